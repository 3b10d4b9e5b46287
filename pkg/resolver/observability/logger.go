// Package observability provides structured logging, metrics and tracing
// for path resolution.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger returns a logger that tags every record with the path list
// it serves.
func EnrichLogger(logger *slog.Logger, listName string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("path_list", listName))
}

// LogResolve logs a successful resolution.
func LogResolve(logger *slog.Logger, name string, variables int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("path resolved",
		slog.String("path_name", name),
		slog.Int("variables", variables),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogResolveError logs a failed resolution.
func LogResolveError(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("path resolution failed",
		slog.String("path_name", name),
		slog.String("error", err.Error()),
	)
}

// LogLoad logs a path list loaded from a source such as a file or store.
func LogLoad(logger *slog.Logger, source string, entries int) {
	if logger == nil {
		return
	}
	logger.Info("path list loaded",
		slog.String("source", source),
		slog.Int("entries", entries),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
