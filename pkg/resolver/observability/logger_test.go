package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records for testing.
type testHandler struct {
	buf   *bytes.Buffer
	level slog.Level
	attrs []slog.Attr
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{
		buf:   h.buf,
		level: h.level,
		attrs: make([]slog.Attr, len(h.attrs)+len(attrs)),
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

func (h *testHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *testHandler) getLastRecord() map[string]any {
	lines := bytes.Split(h.buf.Bytes(), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) > 0 {
			var m map[string]any
			if err := json.Unmarshal(lines[i], &m); err == nil {
				return m
			}
		}
	}
	return nil
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds path_list", func(t *testing.T) {
		h := newTestHandler()
		enriched := EnrichLogger(slog.New(h), "api")
		enriched.Info("test message")

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "api", record["path_list"])
		assert.Equal(t, "test message", record["msg"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "api"))
	})
}

func TestLogResolve(t *testing.T) {
	t.Run("logs at DEBUG level", func(t *testing.T) {
		h := newTestHandler()
		LogResolve(slog.New(h), "users.show", 2, 0.5)

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "DEBUG", record["level"])
		assert.Equal(t, "path resolved", record["msg"])
		assert.Equal(t, "users.show", record["path_name"])
		assert.Equal(t, float64(2), record["variables"]) // JSON decodes ints as float64
		assert.Equal(t, 0.5, record["duration_ms"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogResolve(nil, "users.show", 0, 0)
		})
	})
}

func TestLogResolveError(t *testing.T) {
	t.Run("logs at WARN level with error", func(t *testing.T) {
		h := newTestHandler()
		LogResolveError(slog.New(h), "missing", errors.New("not here"))

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "path resolution failed", record["msg"])
		assert.Equal(t, "missing", record["path_name"])
		assert.Equal(t, "not here", record["error"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogResolveError(nil, "missing", errors.New("x"))
		})
	})
}

func TestLogLoad(t *testing.T) {
	h := newTestHandler()
	LogLoad(slog.New(h), "routes.yaml", 12)

	record := h.getLastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "routes.yaml", record["source"])
	assert.Equal(t, float64(12), record["entries"])

	assert.NotPanics(t, func() { LogLoad(nil, "x", 0) })
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(5 * time.Millisecond)
	elapsed := done()
	assert.GreaterOrEqual(t, elapsed, 5.0)
}
