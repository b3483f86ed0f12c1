package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when nothing is set", func(t *testing.T) {
		cfg, err := Load(nil)
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.Dimension)
		assert.Equal(t, 0.5, cfg.Seed)
		assert.Equal(t, 100, cfg.Count)
		assert.Equal(t, uint64(500), cfg.Index)
		assert.Equal(t, PrecisionFloat64, cfg.Precision)
		assert.Equal(t, 0, cfg.Integrate)
		assert.False(t, cfg.Placement)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "15:04:05", cfg.Log.TimeFormat)
	})

	t.Run("loads values from environment variables with QUASIRAND prefix", func(t *testing.T) {
		t.Setenv("QUASIRAND_DIMENSION", "5")
		t.Setenv("QUASIRAND_SEED", "0.25")
		t.Setenv("QUASIRAND_PRECISION", "FLOAT32")
		t.Setenv("QUASIRAND_LOG_LEVEL", "debug")

		cfg, err := Load(nil)
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.Dimension)
		assert.Equal(t, 0.25, cfg.Seed)
		assert.Equal(t, PrecisionFloat32, cfg.Precision)
		assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	})

	t.Run("flags override environment variables", func(t *testing.T) {
		t.Setenv("QUASIRAND_DIMENSION", "5")
		t.Setenv("QUASIRAND_COUNT", "7")

		cfg, err := Load([]string{"--dim", "3", "--index", "14"})
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.Dimension)
		assert.Equal(t, 7, cfg.Count)
		assert.Equal(t, uint64(14), cfg.Index)
	})

	t.Run("reads an explicit config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		content := "dimension: 4\nseed: 0.1\nintegrate: 2048\nlog:\n  level: warn\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load([]string{"--config", path})
		require.NoError(t, err)

		assert.Equal(t, 4, cfg.Dimension)
		assert.Equal(t, 0.1, cfg.Seed)
		assert.Equal(t, 2048, cfg.Integrate)
		assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
	})

	t.Run("missing explicit config file is an error", func(t *testing.T) {
		_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")})
		assert.Error(t, err)
	})

	t.Run("unknown flag is an error", func(t *testing.T) {
		_, err := Load([]string{"--bogus"})
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero dimension", []string{"--dim", "0"}},
		{"seed at one", []string{"--seed", "1"}},
		{"negative seed", []string{"--seed=-0.5"}},
		{"negative count", []string{"--count=-1"}},
		{"negative integrate", []string{"--integrate=-5"}},
		{"unknown log level", []string{"--log-level", "loud"}},
		{"placement outside 2-D", []string{"--placement", "--dim", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}

	t.Run("unknown precision", func(t *testing.T) {
		_, err := Load([]string{"--precision", "float16"})
		assert.ErrorIs(t, err, ErrUnknownPrecision)
	})
}
