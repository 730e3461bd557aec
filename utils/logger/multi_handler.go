package logger

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
)

// MultiHandler fans each record out to stdout and the OTel log bridge.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler pairs the given stdout handler with the otelslog
// bridge. The bridge exports through the global logger provider, which
// stays a no-op until the host process installs an SDK, so enabling it
// without a collector costs nothing.
func NewMultiHandler(stdout slog.Handler) *MultiHandler {
	return &MultiHandler{
		handlers: []slog.Handler{
			NewTraceContextHandler(stdout),
			otelslog.NewHandler(
				ServiceName,
				otelslog.WithLoggerProvider(global.GetLoggerProvider()),
			),
		},
	}
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			_ = handler.Handle(ctx, r)
		}
	}
	return nil
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: newHandlers}
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &MultiHandler{handlers: newHandlers}
}
