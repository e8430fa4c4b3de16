// Package tracing owns the tracer-provider lifecycle for the modeltrack
// libraries. It decides, once, whether to adopt an externally configured
// global OpenTelemetry provider or to create a provider it owns outright, and
// it scopes every teardown operation to the state it actually created.
//
// Two modes are supported, selected by configuration at initialization time:
//
//   - Global mode (the default): the first tracer request resolves against the
//     process-wide provider slot. If an auto-instrumentation agent already
//     installed a provider there, that provider is adopted as-is and the
//     library's span processors are attached to it. Only when the slot is
//     empty does the library install a provider of its own.
//   - Isolated mode: the library creates a provider that never touches the
//     global slot, so tracing can be torn down and recreated without affecting
//     any other consumer of OpenTelemetry in the process.
//
// The ownership rule is the point of this package: Reset only ever mutates
// state the active mode exclusively created. In global mode the slot and its
// one-time install latch are left untouched, because resetting a latch the
// library does not own causes a second, competing install that orphans the
// original provider's processors and every consumer of the current span.
//
// Basic Usage:
//
//	cfg, err := tracing.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	owner, err := tracing.NewOwner(cfg, log)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, span, err := owner.StartSpan(ctx, "log-model")
//	if err != nil {
//		return err
//	}
//	defer span.End()
//
// Configuration:
//
// The package reads MODELTRACK_* environment variables:
//
//	MODELTRACK_USE_ISOLATED_TRACER_PROVIDER=true   # isolated mode; absent/false means global
//	MODELTRACK_TRACING_SERVICE_NAME=my-service
//	MODELTRACK_TRACING_ENABLE_EXPORT=true
//	MODELTRACK_TRACING_EXPORT_PROTOCOL=grpc        # or http
//	MODELTRACK_TRACING_EXPORT_ENDPOINT=collector:4317
//
// Invalid values fail at LoadConfig, not at first span creation.
//
// FX Module Integration:
//
// This package provides an fx module for easy integration:
//
//	app := fx.New(
//		logger.FXModule,
//		tracing.FXModule,
//		// ... other modules
//	)
//	app.Run()
//
// Thread Safety:
//
// All methods on Owner are safe for concurrent use by multiple goroutines.
// Concurrent GetTracer calls resolve exactly one provider; late callers
// observe the winner.
package tracing
