package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("ONTOSCOPE_LANG overrides lang", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ONTOSCOPE_LANG", "fr")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "fr", cfg.Lang)
	})

	t.Run("ONTOSCOPE_THEME overrides theme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ONTOSCOPE_THEME", "light")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "light", cfg.Display.Theme)
	})

	t.Run("log overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ONTOSCOPE_LOG_LEVEL", "debug")
		t.Setenv("ONTOSCOPE_LOG_FORMAT", "json")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("empty env keeps values", func(t *testing.T) {
		clearEnv(t)

		cfg := &Config{Lang: "fr"}
		cfg.applyEnvOverrides()

		assert.Equal(t, "fr", cfg.Lang)
		assert.Empty(t, cfg.Display.Theme)
	})
}

func TestEnvOverridesBeatFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ontoscope.yaml")

	cfg := DefaultConfig()
	cfg.Lang = "fr"
	require.NoError(t, cfg.Save(path))

	t.Setenv("ONTOSCOPE_LANG", "en")
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", loaded.Lang)
}
