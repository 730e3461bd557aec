package stash_db

import (
	"fmt"
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	MaxConns int
	MinConns int
}

func NewDatabaseConfigFromEnv() *DatabaseConfig {
	return &DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     getEnvOrDefault("DB_USER", "devuser"),
		Password: getEnvOrDefault("DB_PASSWORD", "devpassword"),
		DBName:   getEnvOrDefault("DB_NAME", "stash"),
		MaxConns: getEnvIntOrDefault("DB_MAX_CONNS", 20),
		MinConns: getEnvIntOrDefault("DB_MIN_CONNS", 5),
	}
}

func (dc *DatabaseConfig) BuildConnectionString() string {
	connectTimeout := getEnvIntOrDefault("DB_CONNECT_TIMEOUT_SECONDS", 30)
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=public connect_timeout=%d",
		dc.Host, dc.Port, dc.User, dc.Password, dc.DBName, connectTimeout,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
