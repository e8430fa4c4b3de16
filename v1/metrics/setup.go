package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server that
// exposes it for scraping.
type Metrics struct {
	// Server is the HTTP server serving the /metrics endpoint.
	Server *http.Server

	// Registry is the isolated Prometheus registry for this service.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
}

// NewMetrics initializes a Metrics instance: an isolated registry wrapped
// with a constant service label, optional default collectors, and an HTTP
// server exposing the registry.
//
// Each service maintains its own registry to prevent metric name collisions
// when multiple services share a process.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	return &Metrics{
		Server: &http.Server{
			Addr:    cfg.Address,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		},
		Registry:   registry,
		registerer: wrapped,
	}
}

// Registerer returns the service-labeled registerer. Instruments from other
// packages, such as the tracing span counters, register through this.
func (m *Metrics) Registerer() prometheus.Registerer {
	return m.registerer
}
