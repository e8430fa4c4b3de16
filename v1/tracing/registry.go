package tracing

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// ProviderRegistry is the process-wide tracer provider slot. The slot is set
// at most once per process lifetime; SetIfAbsent reports whether the caller
// performed that install.
//
// The registry is an interface so tests and embedders can substitute a fresh
// slot instead of relying on true process-global state.
type ProviderRegistry interface {
	// SetIfAbsent installs provider when the slot is empty and reports whether
	// this call won the install.
	SetIfAbsent(provider trace.TracerProvider) bool

	// Get returns the provider currently occupying the slot, if any.
	Get() (trace.TracerProvider, bool)
}

// OTelRegistry implements ProviderRegistry over the OpenTelemetry globals.
//
// The slot is considered populated when an install went through this registry
// or when the current global provider is an SDK TracerProvider, which is how
// auto-instrumentation agents manifest. An external actor that registers a
// non-SDK provider directly with otel is indistinguishable from the built-in
// delegator and reads as absent; adopting such providers is best-effort.
type OTelRegistry struct {
	mu        sync.Mutex
	installed bool
}

// NewOTelRegistry returns a registry backed by the OpenTelemetry global slot.
func NewOTelRegistry() *OTelRegistry {
	return &OTelRegistry{}
}

// SetIfAbsent installs provider into the OpenTelemetry global slot when it is
// empty. The check and the install happen under one lock, so only one caller
// ever wins.
func (r *OTelRegistry) SetIfAbsent(provider trace.TracerProvider) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.populated() {
		return false
	}
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	r.installed = true
	return true
}

// Get returns the provider occupying the global slot, if any.
func (r *OTelRegistry) Get() (trace.TracerProvider, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.populated() {
		return nil, false
	}
	return otel.GetTracerProvider(), true
}

func (r *OTelRegistry) populated() bool {
	if r.installed {
		return true
	}
	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	return ok
}
