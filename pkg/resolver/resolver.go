package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/olavoasantos/resolver/pkg/resolver/observability"
)

// Resolver binds a path list to a logger, metrics recorder and span
// manager. It adds instrumentation around the package-level functions and
// otherwise behaves exactly like them.
//
// Resolver never modifies its path list and is safe for concurrent use as
// long as the caller does not modify the list either.
type Resolver struct {
	list    PathList
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates a Resolver over list.
//
// Default configuration:
//   - Logger: nil (no logging)
//   - Metrics: observability.NoopMetrics{}
//   - Tracing: observability.NoopSpanManager{}
func New(list PathList, opts ...Option) *Resolver {
	r := &Resolver{
		list:    list,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns the underlying path list.
// The returned list should not be modified.
func (r *Resolver) List() PathList {
	return r.list
}

// Resolve looks up name and substitutes data into the template.
// See the package-level Resolve.
func (r *Resolver) Resolve(ctx context.Context, name string, data map[string]any) (string, error) {
	return r.ResolveInOrder(ctx, name, VariablesOf(data))
}

// ResolveInOrder looks up name and substitutes vars in slice order.
func (r *Resolver) ResolveInOrder(ctx context.Context, name string, vars Variables) (string, error) {
	ctx, span := r.spans.StartResolveSpan(ctx, name)
	start := time.Now()

	value, err := ResolvePath(r.list, name)
	if err != nil {
		r.metrics.RecordResolution(ctx, name, time.Since(start), err)
		observability.LogResolveError(r.logger, name, err)
		r.spans.EndSpanWithError(span, err)
		return "", err
	}

	result := ResolveVariablesInOrder(Stringify(value), vars)
	elapsed := time.Since(start)
	r.spans.AddSpanEvent(ctx, "variables.substituted", attribute.Int("count", len(vars)))

	r.metrics.RecordSubstitution(ctx, name, len(vars))
	r.metrics.RecordResolution(ctx, name, elapsed, nil)
	observability.LogResolve(r.logger, name, len(vars), float64(elapsed.Microseconds())/1000)
	r.spans.EndSpanWithError(span, nil)
	return result, nil
}

// ResolvePath returns the raw value stored under name.
func (r *Resolver) ResolvePath(ctx context.Context, name string) (any, error) {
	ctx, span := r.spans.StartResolveSpan(ctx, name)
	start := time.Now()

	value, err := ResolvePath(r.list, name)
	r.metrics.RecordResolution(ctx, name, time.Since(start), err)
	if err != nil {
		observability.LogResolveError(r.logger, name, err)
	}
	r.spans.EndSpanWithError(span, err)
	return value, err
}

// MustResolve is like Resolve but panics if name cannot be resolved.
//
// Use this for path names fixed at compile time.
func (r *Resolver) MustResolve(ctx context.Context, name string, data map[string]any) string {
	result, err := r.Resolve(ctx, name, data)
	if err != nil {
		panic(fmt.Sprintf("resolver: %v", err))
	}
	return result
}

// Has reports whether name resolves. It is not instrumented.
func (r *Resolver) Has(name string) bool {
	_, err := ResolvePath(r.list, name)
	return err == nil
}

// Names returns the dotted names of every leaf in the path list, sorted.
func (r *Resolver) Names() []string {
	var names []string
	Walk(r.list, func(name string, _ any) bool {
		names = append(names, name)
		return true
	})
	return names
}
