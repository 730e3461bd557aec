package config

import "time"

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Search    SearchConfig    `json:"search"`
	Embedding EmbeddingConfig `json:"embedding"`
	Logging   LoggingConfig   `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	MinConnections    int           `json:"min_connections" env:"DB_MIN_CONNECTIONS" default:"2"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

// SearchConfig bounds the retrieval pipeline. MatchingDistance is only
// the default; callers widen it per request for "show more results".
type SearchConfig struct {
	DefaultLimit     int           `json:"default_limit" env:"SEARCH_DEFAULT_LIMIT" default:"20"`
	MaxLimit         int           `json:"max_limit" env:"SEARCH_MAX_LIMIT" default:"100"`
	MatchingDistance float64       `json:"matching_distance" env:"SEARCH_MATCHING_DISTANCE" default:"0.1"`
	VectorRowCap     int           `json:"vector_row_cap" env:"SEARCH_VECTOR_ROW_CAP" default:"50"`
	EmbedTimeout     time.Duration `json:"embed_timeout" env:"SEARCH_EMBED_TIMEOUT" default:"5s"`
}

type EmbeddingConfig struct {
	URL            string `json:"url" env:"EMBEDDING_URL" default:"http://ollama:11434"`
	Model          string `json:"model" env:"EMBEDDING_MODEL" default:"nomic-embed-text"`
	TimeoutSeconds int    `json:"timeout_seconds" env:"EMBEDDING_TIMEOUT_SECONDS" default:"30"`
}

type LoggingConfig struct {
	Level       string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format      string `json:"format" env:"LOG_FORMAT" default:"json"`
	OTelEnabled bool   `json:"otel_enabled" env:"OTEL_ENABLED" default:"false"`
}

// NewConfig loads configuration from environment variables with
// fallback to the tag-declared defaults, then validates it.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
