// Package metrics provides Prometheus metrics wiring for the modeltrack
// libraries.
//
// Each service gets an isolated Prometheus registry wrapped with a constant
// service label, an optional set of default Go/process collectors, and an
// HTTP server exposing the /metrics endpoint for scraping. Other packages
// register their instruments through the Registerer accessor; the tracing
// package's span-activity counters are the primary consumer.
//
// Basic Usage:
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		ServiceName:             "tracking-api",
//		EnableDefaultCollectors: true,
//	})
//
//	owner, err := tracing.NewOwner(cfg, log,
//		tracing.WithMetricsRegisterer(m.Registerer()),
//	)
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		// ... other modules
//	)
//	app.Run()
package metrics
