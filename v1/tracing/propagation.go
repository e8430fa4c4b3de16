package tracing

import (
	"context"

	"go.opentelemetry.io/otel/propagation"
)

// propagator carries trace context across service boundaries using the W3C
// TraceContext and Baggage formats.
var propagator = propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})

// InjectCarrier extracts the trace context active in ctx into a header map
// suitable for transmission across a service boundary, typically as HTTP or
// message headers. The map contains the "traceparent" entry and, when
// present, "tracestate" and baggage.
func InjectCarrier(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// ExtractCarrier returns a context carrying the trace information found in
// carrier. Spans started from the returned context join the remote trace as
// children of the propagated span.
func ExtractCarrier(ctx context.Context, carrier map[string]string) context.Context {
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
