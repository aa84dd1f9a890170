package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefault(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(cfg, &buf)
	return &buf
}

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	return rec
}

func TestJSONLogging(t *testing.T) {
	buf := captureDefault(t, NewConfig("info", "json", "farm-test", "1.0.0", "test"))

	Info("tile planted", "tile", 12, "crop", "wheat")

	rec := decodeRecord(t, buf)
	assert.Equal(t, "farm-test", rec[AttrKeyService])
	assert.Equal(t, "1.0.0", rec[AttrKeyVersion])
	assert.Equal(t, "test", rec[AttrKeyEnvironment])
	assert.Equal(t, "tile planted", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, float64(12), rec["tile"])
	assert.Equal(t, "wheat", rec["crop"])
}

func TestFromContext(t *testing.T) {
	buf := captureDefault(t, NewConfig("debug", "json", "", "", "test"))

	FromContext(context.Background()).Info("plain")
	_, has := decodeRecord(t, buf)[AttrKeyRequestID]
	assert.False(t, has)

	buf.Reset()
	ctx := WithRequestID(context.Background(), "req-9")
	FromContext(ctx).Info("scoped")
	assert.Equal(t, "req-9", decodeRecord(t, buf)[AttrKeyRequestID])
	assert.Equal(t, "req-9", GetRequestID(ctx))
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	id, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}

func TestLogLevelFiltering(t *testing.T) {
	buf := captureDefault(t, NewConfig("warn", "text", "", "", "test"))

	Info("hidden")
	assert.Zero(t, buf.Len())

	Warn("shown")
	Error("also shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "also shown")
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		env         string
		wantLevel   slog.Level
		wantJSON    bool
		wantSource  bool
		wantService string
	}{
		{"blank dev", "", "", EnvironmentDev, slog.LevelInfo, false, true, DefaultServiceName},
		{"blank prod", "", "", EnvironmentProduction, slog.LevelInfo, true, false, DefaultServiceName},
		{"prod with text override", "ERROR", "text", EnvironmentProduction, slog.LevelError, false, false, DefaultServiceName},
		{"warning alias", "warning", "json", "staging", slog.LevelWarn, true, false, DefaultServiceName},
		{"unknown level", "loud", "", "development", slog.LevelInfo, false, true, DefaultServiceName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.level, tt.format, "", "", tt.env)
			assert.Equal(t, tt.wantLevel, cfg.LogLevel())
			assert.Equal(t, tt.wantJSON, cfg.IsJSON())
			assert.Equal(t, tt.wantSource, cfg.AddSource)
			assert.Equal(t, tt.wantService, cfg.ServiceName)
			assert.Equal(t, DefaultVersion, cfg.Version)
		})
	}
}
