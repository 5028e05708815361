package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Cleanup(func() { Init(Config{Level: slog.LevelWarn}) })
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.AddSource)
	assert.Equal(t, os.Stderr, cfg.Output)
}

func TestInit(t *testing.T) {
	resetLogger(t)

	t.Run("text_config", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: slog.LevelDebug, Output: &buf})

		DebugLog("hello", KeyCount, 2)
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("json_config", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})

		LogOperation("add", KeyAppointment, "Bob")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "operation", entry["msg"])
		assert.Equal(t, "add", entry[KeyOperation])
		assert.Equal(t, "Bob", entry[KeyAppointment])
	})

	t.Run("level_filters", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: slog.LevelWarn, Output: &buf})

		DebugLog("hidden")
		DebugContext(context.Background(), "hidden")
		assert.Empty(t, buf.String())

		Warn("shown")
		ErrorContext(context.Background(), "shown too")
		assert.Contains(t, buf.String(), "level=WARN msg=shown")
		assert.Contains(t, buf.String(), "level=ERROR msg=\"shown too\"")
	})
}

func TestSessionContext(t *testing.T) {
	resetLogger(t)

	ctx := NewSessionContext(context.Background())
	id := SessionIDFromContext(ctx)
	assert.Len(t, id, 36)

	assert.Equal(t, "", SessionIDFromContext(context.Background()))
	assert.Equal(t, "abc", SessionIDFromContext(WithSessionID(context.Background(), "abc")))

	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, Output: &buf})
	DebugContext(ctx, "tagged")
	assert.Contains(t, buf.String(), "session_id="+id)
}
