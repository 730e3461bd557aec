package config

import (
	"fmt"
	"strings"
)

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateSearchConfig(&config.Search); err != nil {
		return fmt.Errorf("search config validation failed: %w", err)
	}

	if err := validateEmbeddingConfig(&config.Embedding); err != nil {
		return fmt.Errorf("embedding config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive")
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be positive, got %d", config.MaxConnections)
	}

	if config.MinConnections < 0 || config.MinConnections > config.MaxConnections {
		return fmt.Errorf("min connections must be between 0 and max connections, got %d", config.MinConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateSearchConfig(config *SearchConfig) error {
	if config.DefaultLimit < 1 {
		return fmt.Errorf("default limit must be positive, got %d", config.DefaultLimit)
	}

	if config.MaxLimit < config.DefaultLimit {
		return fmt.Errorf("max limit must be at least the default limit, got %d", config.MaxLimit)
	}

	// cosine distance lives in [0, 2]
	if config.MatchingDistance <= 0 || config.MatchingDistance > 2 {
		return fmt.Errorf("matching distance must be in (0, 2], got %v", config.MatchingDistance)
	}

	if config.VectorRowCap < 1 {
		return fmt.Errorf("vector row cap must be positive, got %d", config.VectorRowCap)
	}

	if config.EmbedTimeout <= 0 {
		return fmt.Errorf("embed timeout must be positive, got %v", config.EmbedTimeout)
	}

	return nil
}

func validateEmbeddingConfig(config *EmbeddingConfig) error {
	if config.URL == "" {
		return fmt.Errorf("embedding URL must not be empty")
	}

	if config.Model == "" {
		return fmt.Errorf("embedding model must not be empty")
	}

	if config.TimeoutSeconds < 1 {
		return fmt.Errorf("embedding timeout must be positive, got %d", config.TimeoutSeconds)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format: %s", config.Format)
	}

	return nil
}
