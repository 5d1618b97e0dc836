package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Level:     "debug",
		Layer:     "application",
		Component: "definitions",
	})
	require.NoError(t, err)

	ctx := WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "loaded definition", "path", "/tmp/dialog.yaml", "buttons", 2)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "loaded definition", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "application", entry["layer"])
	assert.Equal(t, "definitions", entry["component"])
	assert.Equal(t, "abc123", entry["correlation_id"])
	assert.Equal(t, "/tmp/dialog.yaml", entry["path"])
	assert.EqualValues(t, 2, entry["buttons"])
}

func TestLoggerWithAddsFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	child := logger.With("component", "controller")
	child.Warn(context.Background(), "tap ignored", "state", "dismissing", "error", errors.New("boom"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "controller", entries[0]["component"])
	assert.Equal(t, "dismissing", entries[0]["state"])
	assert.Equal(t, "boom", entries[0]["error"])
	assert.Equal(t, "infrastructure", entries[0]["layer"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "warn"})
	require.NoError(t, err)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	logger.Error(context.Background(), "shown")
	assert.Len(t, decodeLines(t, &buf), 1)
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestConsoleLoggerWritesText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Console: true, NoColor: true})
	require.NoError(t, err)

	logger.Info(context.Background(), "presented", "style", "alert")
	assert.Contains(t, buf.String(), "presented")
	assert.Contains(t, buf.String(), "style=alert")
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello world")
	assert.Same(t, noOp, noOp.With("key", "value"))
}

func TestBufferStoresAndFlushes(t *testing.T) {
	t.Parallel()

	buffer := NewBuffer(10)
	logger := buffer.Logger()

	ctx := WithCorrelationID(context.Background(), "buffered")
	logger.Info(ctx, "presented", "component", "host")
	logger.With("component", "controller").Error(ctx, "failed", "attempt", 1)
	require.Equal(t, 2, buffer.Len())

	var out bytes.Buffer
	delegate, err := New(Options{Writer: &out})
	require.NoError(t, err)
	buffer.Flush(delegate)

	entries := decodeLines(t, &out)
	require.Len(t, entries, 2)
	assert.Equal(t, "presented", entries[0]["message"])
	assert.Equal(t, "host", entries[0]["component"])
	assert.Equal(t, "failed", entries[1]["message"])
	assert.Equal(t, "controller", entries[1]["component"])
	assert.Equal(t, "buffered", entries[1]["correlation_id"])
	assert.Zero(t, buffer.Len())
}

func TestBufferDropsOldestWhenFull(t *testing.T) {
	t.Parallel()

	buffer := NewBuffer(2)
	logger := buffer.Logger()
	for _, msg := range []string{"one", "two", "three"} {
		logger.Info(context.Background(), msg)
	}
	assert.Equal(t, 2, buffer.Len())
	assert.Equal(t, 1, buffer.Dropped())

	var out bytes.Buffer
	delegate, err := New(Options{Writer: &out})
	require.NoError(t, err)
	buffer.Flush(delegate)

	entries := decodeLines(t, &out)
	require.Len(t, entries, 2)
	assert.Equal(t, "two", entries[0]["message"])
	assert.Equal(t, "three", entries[1]["message"])
}
