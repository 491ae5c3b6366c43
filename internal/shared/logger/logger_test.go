package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"planets-generator/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.LoggingConfig{Level: "info", JSONFormat: true})

	log.Debug("hidden")
	log.Info("generated", "systems", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "generated", record["msg"])
	assert.Equal(t, float64(3), record["systems"])
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelDebug, parseLogLevel("verbose"))
}
