package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEnvKey = "ARCFARMIA_TEST_VAR"

// setTestEnv sets testEnvKey, or leaves it unset when set is false
func setTestEnv(t *testing.T, value string, set bool) {
	t.Helper()
	t.Setenv(testEnvKey, value)
	if !set {
		os.Unsetenv(testEnvKey)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"unset uses default", "", false, 42},
		{"empty uses default", "", true, 42},
		{"valid", "100", true, 100},
		{"negative", "-10", true, -10},
		{"zero", "0", true, 0},
		{"float uses default", "42.5", true, 42},
		{"garbage uses default", "not-a-number", true, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTestEnv(t, tt.value, tt.set)
			assert.Equal(t, tt.want, getEnvAsInt(testEnvKey, 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	def := 5 * time.Minute
	tests := []struct {
		name  string
		value string
		set   bool
		want  time.Duration
	}{
		{"unset uses default", "", false, def},
		{"empty uses default", "", true, def},
		{"milliseconds", "250ms", true, 250 * time.Millisecond},
		{"seconds", "30s", true, 30 * time.Second},
		{"compound", "1h30m45s", true, time.Hour + 30*time.Minute + 45*time.Second},
		{"number without unit uses default", "100", true, def},
		{"garbage uses default", "soon", true, def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTestEnv(t, tt.value, tt.set)
			assert.Equal(t, tt.want, getEnvAsDuration(testEnvKey, def))
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		def   bool
		want  bool
	}{
		{"unset uses default", "", false, true, true},
		{"empty uses default", "", true, false, false},
		{"true", "true", true, false, true},
		{"numeric false", "0", true, true, false},
		{"garbage uses default", "yes please", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTestEnv(t, tt.value, tt.set)
			assert.Equal(t, tt.want, getEnvAsBool(testEnvKey, tt.def))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	setTestEnv(t, " 10.0.0.1, ,10.0.0.2 ", true)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsList(testEnvKey))

	setTestEnv(t, "", true)
	assert.Empty(t, getEnvAsList(testEnvKey))
}

func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "not-a-number")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
	})
}
