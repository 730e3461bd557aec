package logger

import (
	"log/slog"
	"os"
	"strings"
)

// ServiceName identifies this process in exported telemetry.
const ServiceName = "stash"

var Logger *slog.Logger

// InitLogger initializes the global structured logger.
// Level and format are read from LOG_LEVEL and LOG_FORMAT so the
// container environment controls verbosity without a config reload.
// With OTEL_ENABLED=true, records are also exported through the
// otelslog bridge.
func InitLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}

	var stdout slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		stdout = slog.NewTextHandler(os.Stdout, opts)
	} else {
		stdout = slog.NewJSONHandler(os.Stdout, opts)
	}

	otelEnabled := strings.EqualFold(os.Getenv("OTEL_ENABLED"), "true")
	var handler slog.Handler
	if otelEnabled {
		handler = NewMultiHandler(stdout)
	} else {
		handler = NewTraceContextHandler(stdout)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "otel_enabled", otelEnabled)

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
