package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		debugEnabled  bool
		errorsEnabled bool
	}{
		{"debug_level", "debug", true, true},
		{"info_level", "info", false, true},
		{"error_level", "error", false, true},
		{"case_insensitive", "WARN", false, true},
		{"invalid_falls_back_to_info", "trace", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.Equal(t, tc.debugEnabled, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.errorsEnabled, logger.Enabled(ctx, slog.LevelError))
		})
	}
}

func TestSetup_SetsProcessDefault(t *testing.T) {
	logger, err := Setup(config.ServerConfig{LogLevel: "warn"})
	require.NoError(t, err)

	assert.Same(t, logger, slog.Default())
}
