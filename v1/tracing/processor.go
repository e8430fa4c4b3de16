package tracing

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Export protocols supported by the OTLP span processor.
const (
	ProtocolHTTP = "http"
	ProtocolGRPC = "grpc"
)

// buildSpanProcessors constructs the span processors this library attaches to
// whichever provider ends up active: a metrics processor counting span
// activity and, when export is enabled, an OTLP batch processor.
func buildSpanProcessors(ctx context.Context, cfg Config, registerer prometheus.Registerer) ([]sdktrace.SpanProcessor, error) {
	processors := []sdktrace.SpanProcessor{newSpanMetricsProcessor(registerer)}

	if cfg.EnableExport {
		exporter, err := newOTLPExporter(ctx, cfg)
		if err != nil {
			return nil, err
		}
		processors = append(processors, sdktrace.NewBatchSpanProcessor(exporter))
	}

	return processors, nil
}

func newOTLPExporter(ctx context.Context, cfg Config) (*otlptrace.Exporter, error) {
	var client otlptrace.Client

	switch cfg.ExportProtocol {
	case ProtocolGRPC:
		var opts []otlptracegrpc.Option
		if cfg.ExportEndpoint != "" {
			opts = append(opts, otlptracegrpc.WithEndpoint(cfg.ExportEndpoint))
		}
		if cfg.ExportInsecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		client = otlptracegrpc.NewClient(opts...)
	case ProtocolHTTP:
		var opts []otlptracehttp.Option
		if cfg.ExportEndpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpoint(cfg.ExportEndpoint))
		}
		if cfg.ExportInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		client = otlptracehttp.NewClient(opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExportProtocol, cfg.ExportProtocol)
	}

	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExporterInit, err)
	}
	return exporter, nil
}

// spanMetricsProcessor counts span activity flowing through a provider. It
// keeps no per-span state and is safe for concurrent use.
type spanMetricsProcessor struct {
	started prometheus.Counter
	ended   prometheus.Counter
}

func newSpanMetricsProcessor(registerer prometheus.Registerer) *spanMetricsProcessor {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &spanMetricsProcessor{
		started: registerCounter(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracing_spans_started_total",
			Help: "Total number of spans started through the library tracer provider.",
		})),
		ended: registerCounter(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracing_spans_ended_total",
			Help: "Total number of spans ended through the library tracer provider.",
		})),
	}
}

// registerCounter registers c, reusing the existing collector when a previous
// provider incarnation already registered the same counter.
func registerCounter(registerer prometheus.Registerer, c prometheus.Counter) prometheus.Counter {
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Counter)
		}
	}
	return c
}

func (p *spanMetricsProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {
	p.started.Inc()
}

func (p *spanMetricsProcessor) OnEnd(_ sdktrace.ReadOnlySpan) {
	p.ended.Inc()
}

func (p *spanMetricsProcessor) Shutdown(context.Context) error {
	return nil
}

func (p *spanMetricsProcessor) ForceFlush(context.Context) error {
	return nil
}
