package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(tracingEnabled bool) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{Zap: zap.New(core), tracingEnabled: tracingEnabled}, logs
}

func TestInfoWithFields(t *testing.T) {
	l, logs := newObservedLogger(false)

	l.Info("run logged", errors.New("boom"), map[string]interface{}{"run_id": "abc"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "run logged", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "abc", fields["run_id"])
}

func TestFieldMapPrecedence(t *testing.T) {
	l, logs := newObservedLogger(false)

	l.Warn("w", nil,
		map[string]interface{}{"key": "first"},
		map[string]interface{}{"key": "second"},
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].ContextMap()["key"])
}

func TestInfoWithContextAddsTraceFields(t *testing.T) {
	l, logs := newObservedLogger(true)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	l.InfoWithContext(ctx, "traced entry", nil, nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
}

func TestInfoWithContextTracingDisabled(t *testing.T) {
	l, logs := newObservedLogger(false)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	l.InfoWithContext(ctx, "untraced entry", nil, nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	_, hasTrace := entries[0].ContextMap()["trace_id"]
	assert.False(t, hasTrace)
}

func TestInfoWithContextNoActiveSpan(t *testing.T) {
	l, logs := newObservedLogger(true)

	l.InfoWithContext(context.Background(), "no span", nil, nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	_, hasTrace := entries[0].ContextMap()["trace_id"]
	assert.False(t, hasTrace)
}
