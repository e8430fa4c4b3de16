package tracing

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides the tracing subsystem to an Fx application: configuration
// read from the environment, the provider Owner, and a shutdown hook that
// flushes library-owned tracing state on application stop.
//
// The module expects a tracing.Logger in the dependency graph, for example:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func(l *logger.Logger) tracing.Logger { return l }),
//	    tracing.FXModule,
//	    // other modules...
//	)
//	app.Run()
var FXModule = fx.Module("tracing",
	fx.Provide(
		LoadConfig,
		func(cfg Config, logger Logger) (*Owner, error) {
			return NewOwner(cfg, logger)
		},
	),
	fx.Invoke(RegisterTracingLifecycle),
)

// RegisterTracingLifecycle registers the shutdown hook for the tracing
// subsystem. On stop it flushes and tears down only what the library owns;
// an adopted external provider is left running with the library's processors
// detached.
func RegisterTracingLifecycle(lc fx.Lifecycle, owner *Owner) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return owner.Shutdown(ctx)
		},
	})
}
