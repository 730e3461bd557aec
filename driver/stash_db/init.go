package stash_db

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
)

// InitDBPool creates the PostgreSQL connection pool and registers the
// pgvector types needed for the embedding distance queries.
func InitDBPool(ctx context.Context) (*pgxpool.Pool, error) {
	// .env is optional; container environments inject real env vars
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	dbConfig := NewDatabaseConfigFromEnv()

	config, err := pgxpool.ParseConfig(dbConfig.BuildConnectionString())
	if err != nil {
		slog.Error("Failed to parse database config", "error", err)
		return nil, err
	}

	config.MaxConns = int32(dbConfig.MaxConns)
	config.MinConns = int32(dbConfig.MinConns)

	// Register pgvector types on every new connection
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		slog.Error("Failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		slog.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	slog.Info("Connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}
