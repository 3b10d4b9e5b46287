package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records resolver metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordResolution records one Resolve call with its duration and error status.
	RecordResolution(ctx context.Context, name string, duration time.Duration, err error)

	// RecordSubstitution records how many variables were applied to a template.
	RecordSubstitution(ctx context.Context, name string, variables int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	resolutions   metric.Int64Counter
	failures      metric.Int64Counter
	latency       metric.Float64Histogram
	substitutions metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("resolver")

	resolutions, err := meter.Int64Counter("resolver.resolutions",
		metric.WithDescription("Number of path resolutions"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("resolver.failures",
		metric.WithDescription("Number of path resolutions that failed"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("resolver.latency_ms",
		metric.WithDescription("Path resolution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	substitutions, err := meter.Int64Histogram("resolver.substitutions",
		metric.WithDescription("Variables applied per resolved template"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		resolutions:   resolutions,
		failures:      failures,
		latency:       latency,
		substitutions: substitutions,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordResolution records a resolution.
func (m *otelMetrics) RecordResolution(ctx context.Context, name string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("path_name", name),
	}

	m.resolutions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.latency.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(attrs...))

	if err != nil {
		m.failures.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordSubstitution records the variable count for a template.
func (m *otelMetrics) RecordSubstitution(ctx context.Context, name string, variables int) {
	m.substitutions.Record(ctx, int64(variables), metric.WithAttributes(
		attribute.String("path_name", name),
	))
}
