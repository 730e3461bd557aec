package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestMultiHandler_WritesStdoutStream(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewJSONHandler(&buf, nil))

	slog.New(h).Info("fanned out", "k", "v")

	assert.Contains(t, buf.String(), `"msg":"fanned out"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestMultiHandler_WithAttrsPropagates(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewJSONHandler(&buf, nil))

	slog.New(h).With("request_id", "req-1").Info("tagged")

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

func TestTraceContextHandler_NoActiveSpan(t *testing.T) {
	var buf bytes.Buffer
	h := NewTraceContextHandler(slog.NewJSONHandler(&buf, nil))

	slog.New(h).Info("plain")

	assert.Contains(t, buf.String(), `"msg":"plain"`)
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestTraceContextHandler_ActiveSpan(t *testing.T) {
	var buf bytes.Buffer
	h := NewTraceContextHandler(slog.NewJSONHandler(&buf, nil))

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x01},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	slog.New(h).InfoContext(ctx, "traced")

	assert.Contains(t, buf.String(), `"trace_id":"01000000000000000000000000000000"`)
	assert.Contains(t, buf.String(), `"span_id":"0100000000000000"`)
}
