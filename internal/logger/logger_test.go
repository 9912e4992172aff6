package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikolayk812/storefront-demo/internal/config"
	"github.com/nikolayk812/storefront-demo/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggerConfig
		verbose   bool
		wantDebug bool
		wantError string
	}{
		{name: "development info", cfg: config.LoggerConfig{Mode: "development", Level: "info"}},
		{name: "production warn", cfg: config.LoggerConfig{Mode: "production", Level: "warn"}},
		{name: "verbose forces debug", cfg: config.LoggerConfig{Mode: "production", Level: "warn"}, verbose: true, wantDebug: true},
		{name: "bad level: error", cfg: config.LoggerConfig{Level: "loud"}, wantError: "zap.ParseAtomicLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.New(tt.cfg, tt.verbose)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantDebug, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.log")

	log, err := logger.New(config.LoggerConfig{Mode: "production", Level: "info", FileEnable: true, Filename: path}, false)
	require.NoError(t, err)

	log.Info("file output check")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file output check")
}
