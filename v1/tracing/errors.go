package tracing

import "errors"

// Common tracing errors
var (
	// ErrInvalidExportProtocol is returned when the configured export protocol
	// is neither "http" nor "grpc".
	ErrInvalidExportProtocol = errors.New("tracing: invalid export protocol")

	// ErrProviderUnresolved is returned when no tracer provider can be
	// resolved for the active mode. Given the initialization guarantees this
	// indicates an internal invariant violation, not a user error.
	ErrProviderUnresolved = errors.New("tracing: tracer provider could not be resolved")

	// ErrExporterInit is returned when the OTLP exporter cannot be constructed.
	ErrExporterInit = errors.New("tracing: exporter initialization failed")
)

// IsInvalidExportProtocol checks if the error is an invalid export protocol error.
func IsInvalidExportProtocol(err error) bool {
	return errors.Is(err, ErrInvalidExportProtocol)
}

// IsProviderUnresolved checks if the error is a provider resolution failure.
func IsProviderUnresolved(err error) bool {
	return errors.Is(err, ErrProviderUnresolved)
}
