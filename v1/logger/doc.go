// Package logger provides structured logging for the modeltrack libraries.
//
// The logger wraps Uber's Zap with a small leveled API and optional
// distributed-tracing integration: when tracing is enabled, the *WithContext
// methods stamp the active trace and span identifiers onto every entry so
// logs correlate with traces in the observability backend.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "tracking-api",
//	})
//
//	log.Info("run logged", nil, map[string]interface{}{
//		"run_id": "abc-123",
//	})
//
//	// With trace correlation:
//	log.InfoWithContext(ctx, "span exported", nil, nil)
//
// Configuration:
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_SERVICE_NAME=tracking-api
//	LOGGER_ENABLE_TRACING=true
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		// ... other modules
//	)
//	app.Run()
//
// Thread Safety:
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
