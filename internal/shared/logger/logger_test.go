package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starsystem-server/internal/shared/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelDebug,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, config.LoggingConfig{Level: "info", Format: "json"}).Info("System generated", "planets", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "System generated", entry["msg"])
	assert.Equal(t, float64(7), entry["planets"])
}

func TestNew_TextFormatFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, config.LoggingConfig{Level: "warn", Format: "text"})
	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestInit_RequiresConfig(t *testing.T) {
	saved := config.GlobalConfig
	t.Cleanup(func() { config.GlobalConfig = saved })

	config.GlobalConfig = nil
	assert.Panics(t, Init)
}
