package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *LogConfig {
	t.Helper()
	return &LogConfig{
		Level:      "info",
		File:       filepath.Join(t.TempDir(), "api.log"),
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
}

func TestNewLogger_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LogConfig)
	}{
		{"unknown level", func(c *LogConfig) { c.Level = "verbose" }},
		{"missing file", func(c *LogConfig) { c.File = "" }},
		{"non-positive max size", func(c *LogConfig) { c.MaxSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			logger, err := NewLogger(cfg)
			require.Error(t, err)
			assert.Nil(t, logger)
		})
	}
}

func TestNewLogger_WritesToConfiguredFile(t *testing.T) {
	cfg := validConfig(t)

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("logger ready")

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger ready")
}
