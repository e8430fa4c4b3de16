package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSpanMetricsProcessorCounts(t *testing.T) {
	registry := prometheus.NewRegistry()
	processor := newSpanMetricsProcessor(registry)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(processor))
	tracer := tp.Tracer("test")

	for i := 0; i < 3; i++ {
		_, span := tracer.Start(context.Background(), "op")
		span.End()
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(processor.started))
	assert.Equal(t, float64(3), testutil.ToFloat64(processor.ended))
	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestSpanMetricsProcessorReregister(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newSpanMetricsProcessor(registry)
	first.started.Inc()

	// A processor built for a recreated provider reuses the collectors the
	// previous incarnation registered.
	second := newSpanMetricsProcessor(registry)
	second.started.Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(first.started))
	assert.Equal(t, float64(2), testutil.ToFloat64(second.started))
}

func TestBuildSpanProcessorsExportDisabled(t *testing.T) {
	cfg := globalConfig()
	processors, err := buildSpanProcessors(context.Background(), cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.Len(t, processors, 1)
}

func TestBuildSpanProcessorsWithExport(t *testing.T) {
	for _, protocol := range []string{ProtocolHTTP, ProtocolGRPC} {
		t.Run(protocol, func(t *testing.T) {
			cfg := globalConfig()
			cfg.EnableExport = true
			cfg.ExportProtocol = protocol
			cfg.ExportEndpoint = "localhost:4317"
			cfg.ExportInsecure = true

			processors, err := buildSpanProcessors(context.Background(), cfg, prometheus.NewRegistry())
			require.NoError(t, err)
			assert.Len(t, processors, 2)

			// No collector is running; shutdown errors are irrelevant here.
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			for _, p := range processors {
				_ = p.Shutdown(ctx)
			}
		})
	}
}

func TestNewOTLPExporterInvalidProtocol(t *testing.T) {
	cfg := globalConfig()
	cfg.ExportProtocol = "udp"

	exporter, err := newOTLPExporter(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, IsInvalidExportProtocol(err))
	assert.Nil(t, exporter)
}
