package resolver

import (
	"log/slog"

	"github.com/olavoasantos/resolver/pkg/resolver/observability"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the structured logger. Successful resolutions are logged
// at DEBUG, failures at WARN.
//
// Default: nil (no logging)
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
//
// Default: observability.NoopMetrics{}
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(r *Resolver) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithSpanManager sets the span manager used for tracing.
//
// Default: observability.NoopSpanManager{}
func WithSpanManager(sm observability.SpanManager) Option {
	return func(r *Resolver) {
		if sm != nil {
			r.spans = sm
		}
	}
}

// WithObservability enables OpenTelemetry metrics and tracing using the
// global meter and tracer providers.
//
// Example:
//
//	otel.SetMeterProvider(mp)
//	otel.SetTracerProvider(tp)
//	r := resolver.New(list, resolver.WithObservability())
func WithObservability() Option {
	return func(r *Resolver) {
		r.metrics = observability.NewMetricsRecorder()
		r.spans = observability.NewSpanManager()
	}
}
