package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/logger"
)

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithOptions(&buf, "json", slog.LevelInfo))

	adapter.Debug("hidden")
	adapter.Info("Loaded data", ports.F("city", "Paris"), ports.F("temperature", 11.5))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Loaded data", entry["msg"])
	assert.Equal(t, "Paris", entry["city"])
	assert.Equal(t, 11.5, entry["temperature"])
}

func TestSlogLoggerAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithOptions(&buf, "text", slog.LevelDebug))

	adapter.Debug("d")
	adapter.Warn("w")
	adapter.Error("e", ports.F("error", errors.NewNetworkError("timeout", nil)))

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "NETWORK_ERROR")
}

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	adapter := NewZapLoggerAdapterFromCore(core)

	adapter.Info("Favorite added", ports.F("city", "Oslo"), ports.F("count", 2))
	adapter.Error("Failed to persist favorites", ports.F("error", errors.NewDatabaseError("disk full", nil)))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "Favorite added", entries[0].Message)
	assert.Equal(t, "Oslo", entries[0].ContextMap()["city"])
	assert.Equal(t, int64(2), entries[0].ContextMap()["count"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Contains(t, entries[1].ContextMap()["error"], "disk full")
}

func TestNewZapLoggerAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZapLoggerAdapter(&buf, "warn")

	adapter.Info("hidden")
	adapter.Warn("shown", ports.F("city", "Rome"))
	require.NoError(t, adapter.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "Rome", entry["city"])
	assert.NotEmpty(t, entry["@timestamp"])
}
