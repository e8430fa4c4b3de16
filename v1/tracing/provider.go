package tracing

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// Logger defines the interface for logging operations in the tracing package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Ownership records who populated the provider slot the Owner resolved
// against. It is tri-state on purpose: telling an install this library
// performed apart from one an external agent performed is what keeps Reset
// scoped to state the library actually owns.
type Ownership int

const (
	// OwnershipUnset means no provider has been resolved since construction
	// or the last reset.
	OwnershipUnset Ownership = iota

	// OwnershipOwned means the active provider was created by this library.
	OwnershipOwned

	// OwnershipExternal means the active provider was installed by another
	// actor and merely adopted.
	OwnershipExternal
)

func (o Ownership) String() string {
	switch o {
	case OwnershipOwned:
		return "owned"
	case OwnershipExternal:
		return "external"
	default:
		return "unset"
	}
}

// instrumentationName scopes tracers issued through StartSpan.
const instrumentationName = "github.com/modeltrack/std/v1/tracing"

// resetShutdownTimeout bounds the flush performed when an owned provider is
// torn down by Reset.
const resetShutdownTimeout = 5 * time.Second

// Owner lazily resolves the tracer provider for the configured mode and
// scopes teardown to the state it created.
//
// In isolated mode the Owner creates a provider that never touches the global
// slot. In global mode it adopts a populated slot as-is, attaching the
// library's span processors to it, and installs a provider only when the slot
// is empty.
//
// All methods are safe for concurrent use; one mutex orders GetTracer, Reset
// and Shutdown against each other.
type Owner struct {
	cfg        Config
	logger     Logger
	registry   ProviderRegistry
	registerer prometheus.Registerer

	// processorOverride replaces the configuration-built processors when set.
	processorOverride []sdktrace.SpanProcessor

	mu        sync.Mutex
	ownership Ownership
	active    trace.TracerProvider
	owned     *sdktrace.TracerProvider
	attached  []sdktrace.SpanProcessor
}

// Option customizes an Owner.
type Option func(*Owner)

// WithRegistry substitutes the global provider slot. Intended for tests and
// embedders that manage a slot of their own.
func WithRegistry(registry ProviderRegistry) Option {
	return func(o *Owner) {
		o.registry = registry
	}
}

// WithSpanProcessors replaces the span processors the Owner would build from
// its configuration.
func WithSpanProcessors(processors ...sdktrace.SpanProcessor) Option {
	return func(o *Owner) {
		o.processorOverride = processors
	}
}

// WithMetricsRegisterer sets the Prometheus registerer that receives the span
// activity counters. Defaults to prometheus.DefaultRegisterer.
func WithMetricsRegisterer(registerer prometheus.Registerer) Option {
	return func(o *Owner) {
		o.registerer = registerer
	}
}

// NewOwner validates cfg and returns an Owner. No provider is created until
// the first GetTracer or StartSpan call.
func NewOwner(cfg Config, logger Logger, opts ...Option) (*Owner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &Owner{
		cfg:      cfg,
		logger:   logger,
		registry: NewOTelRegistry(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// GetTracer returns a tracer bound to the active provider, resolving the
// provider on first use. The returned tracer is never backed by an absent
// provider; resolution failure returns an error instead.
func (o *Owner) GetTracer(name string) (trace.Tracer, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	provider, err := o.resolveLocked()
	if err != nil {
		return nil, err
	}
	return provider.Tracer(name), nil
}

// StartSpan starts a span on the active provider. The span joins any parent
// already present in ctx, so calls nested inside externally started spans
// stay in the external trace.
func (o *Owner) StartSpan(ctx context.Context, name string) (context.Context, trace.Span, error) {
	tracer, err := o.GetTracer(instrumentationName)
	if err != nil {
		return ctx, nil, err
	}
	ctx, span := tracer.Start(ctx, name)
	return ctx, span, nil
}

// TracerProvider returns the active provider, or nil when none has been
// resolved since construction or the last reset.
func (o *Owner) TracerProvider() trace.TracerProvider {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

// Ownership reports who populated the slot the Owner resolved against.
func (o *Owner) Ownership() Ownership {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ownership
}

// Initialized reports whether the local once-latch is set, i.e. whether a
// provider has been resolved since construction or the last reset.
func (o *Owner) Initialized() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ownership != OwnershipUnset
}

// Reset tears down the tracing state this library owns. It is safe to call
// any number of times, including before the first GetTracer call.
//
// Isolated mode: the owned provider is shut down and the local latch returns
// to unset, so the next GetTracer creates a fresh provider.
//
// Global mode: the global slot and its install latch are left untouched; they
// may have been populated by an external agent before this library ever ran.
// Processors the library attached to an adopted provider are detached
// best-effort. The next GetTracer re-resolves through the slot.
func (o *Owner) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.cfg.Mode() {
	case ModeIsolated:
		if o.owned != nil {
			ctx, cancel := context.WithTimeout(context.Background(), resetShutdownTimeout)
			if err := o.owned.Shutdown(ctx); err != nil {
				o.logger.Warn("isolated tracer provider shutdown failed", err, nil)
			}
			cancel()
		}
	default:
		o.detachLocked()
	}

	o.clearLocked()
}

// Shutdown flushes and stops the provider this library created, if any, and
// detaches from an adopted one. The global slot is never cleared.
func (o *Owner) Shutdown(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var err error
	if o.owned != nil {
		err = o.owned.Shutdown(ctx)
	} else {
		o.detachLocked()
	}
	o.clearLocked()
	return err
}

// resolveLocked returns the active provider, creating or adopting one when
// the local latch is unset. Callers must hold o.mu.
func (o *Owner) resolveLocked() (trace.TracerProvider, error) {
	if o.ownership != OwnershipUnset && o.active != nil {
		return o.active, nil
	}

	if o.cfg.Mode() == ModeIsolated {
		return o.createIsolatedLocked()
	}
	return o.resolveGlobalLocked()
}

func (o *Owner) createIsolatedLocked() (trace.TracerProvider, error) {
	processors, err := o.spanProcessors()
	if err != nil {
		return nil, err
	}

	tp := o.newProvider(processors)
	o.owned = tp
	o.active = tp
	o.ownership = OwnershipOwned
	o.logger.Debug("created isolated tracer provider", nil, map[string]interface{}{
		"service": o.cfg.ServiceName,
	})
	return tp, nil
}

func (o *Owner) resolveGlobalLocked() (trace.TracerProvider, error) {
	if existing, ok := o.registry.Get(); ok {
		return o.adoptLocked(existing)
	}

	processors, err := o.spanProcessors()
	if err != nil {
		return nil, err
	}

	candidate := o.newProvider(processors)
	if o.registry.SetIfAbsent(candidate) {
		o.owned = candidate
		o.active = candidate
		o.ownership = OwnershipOwned
		o.logger.Info("installed global tracer provider", nil, map[string]interface{}{
			"service": o.cfg.ServiceName,
		})
		return candidate, nil
	}

	// Lost the install race. Discard the candidate and adopt the winner.
	if err := candidate.Shutdown(context.Background()); err != nil {
		o.logger.Warn("failed to discard losing provider candidate", err, nil)
	}
	existing, ok := o.registry.Get()
	if !ok {
		return nil, ErrProviderUnresolved
	}
	return o.adoptLocked(existing)
}

// adoptLocked takes an externally installed provider as the active one,
// attaching the library's processors when the provider supports it.
func (o *Owner) adoptLocked(provider trace.TracerProvider) (trace.TracerProvider, error) {
	if sdk, ok := provider.(*sdktrace.TracerProvider); ok {
		processors, err := o.spanProcessors()
		if err != nil {
			return nil, err
		}
		for _, p := range processors {
			sdk.RegisterSpanProcessor(p)
		}
		o.attached = processors
	} else {
		o.logger.Warn("adopted tracer provider is not an SDK provider, span processors not attached", nil, nil)
	}

	o.active = provider
	o.ownership = OwnershipExternal
	return provider, nil
}

// detachLocked removes the processors this library attached to an adopted
// provider. Detachment is best-effort: when the active provider does not
// support targeted removal the processors stay, which is acceptable because
// re-resolution remains idempotent.
func (o *Owner) detachLocked() {
	if len(o.attached) == 0 {
		return
	}
	sdk, ok := o.active.(*sdktrace.TracerProvider)
	if !ok {
		return
	}
	for _, p := range o.attached {
		sdk.UnregisterSpanProcessor(p)
	}
}

func (o *Owner) clearLocked() {
	o.owned = nil
	o.active = nil
	o.attached = nil
	o.ownership = OwnershipUnset
}

func (o *Owner) spanProcessors() ([]sdktrace.SpanProcessor, error) {
	if o.processorOverride != nil {
		return o.processorOverride, nil
	}
	return buildSpanProcessors(context.Background(), o.cfg, o.registerer)
}

func (o *Owner) newProvider(processors []sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(o.cfg.ServiceName),
			semconv.DeploymentEnvironment(o.cfg.AppEnv),
			attribute.String("environment", o.cfg.AppEnv),
		)),
	}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	return sdktrace.NewTracerProvider(opts...)
}
