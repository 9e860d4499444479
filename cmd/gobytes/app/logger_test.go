package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   string
	}{
		{
			name:   "explicit level beats verbose",
			config: &Config{LogLevel: "error", Verbose: true},
			want:   "error",
		},
		{
			name:   "explicit level beats environment",
			config: &Config{LogLevel: "trace", LogLevelEnv: "error"},
			want:   "trace",
		},
		{
			name:   "verbose beats environment",
			config: &Config{Verbose: true, LogLevelEnv: "error"},
			want:   "debug",
		},
		{
			name:   "quiet beats environment",
			config: &Config{Quiet: true, LogLevelEnv: "debug"},
			want:   "warn",
		},
		{
			name:   "verbose and quiet resolves to quiet",
			config: &Config{Verbose: true, Quiet: true},
			want:   "warn",
		},
		{
			name:   "environment beats default",
			config: &Config{LogLevelEnv: "warn"},
			want:   "warn",
		},
		{
			name:   "default is info",
			config: &Config{},
			want:   "info",
		},
		{
			name:   "invalid explicit level falls back to info",
			config: &Config{LogLevel: "loud"},
			want:   "info",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, determineLogLevel(tc.config))
		})
	}
}

func TestNewLoggerFlagBeatsEnvironment(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	// LOG_LEVEL says error, but -v was given; debug events must flow.
	config := &Config{
		Verbose:     true,
		LogLevelEnv: "error",
		LogFormat:   "json",
		LogOutput:   logFile,
	}

	logger := NewLogger(config)
	logger.Debug().Msg("verbose wins")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "verbose wins")
}
