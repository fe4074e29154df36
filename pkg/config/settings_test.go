package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xrelkd/axdot/pkg/config"
	"github.com/xrelkd/axdot/pkg/errors"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultFileName, s.ConfigFile)
	assert.False(t, s.Replace)
	assert.Empty(t, s.EnvFile)
	assert.False(t, s.NoColor)
}

func TestLoadSettings_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.toml", `
config = "workstation.yaml"
replace = true
env_file = ".env"
`)

	t.Run("file overrides defaults", func(t *testing.T) {
		s, err := config.LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "workstation.yaml", s.ConfigFile)
		assert.True(t, s.Replace)
		assert.Equal(t, ".env", s.EnvFile)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("AXDOT_CONFIG", " laptop.yaml ")
		t.Setenv("AXDOT_REPLACE", "false")
		t.Setenv("AXDOT_NO_COLOR", "true")

		s, err := config.LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "laptop.yaml", s.ConfigFile)
		assert.False(t, s.Replace)
		assert.True(t, s.NoColor)
	})
}

func TestLoadSettings_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.toml", "config = \n")
	_, err := config.LoadSettings(path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsLoad))
}

func TestSettingsPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", "axdot", "settings.toml"), config.SettingsPath())
}
