package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
template:
  marker: layout_paths
  extension: .json
  key: service
layout:
  packageRoot: kotlin
entry:
  extension: kt
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "layout_paths", cfg.Template.Marker)
		assert.Equal(t, ".json", cfg.Template.Extension)
		assert.Equal(t, "service", cfg.Template.Key)
		assert.Equal(t, "kotlin", cfg.Layout.PackageRoot)
		assert.Equal(t, "kt", cfg.Entry.Extension)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Template.Marker)
		assert.Empty(t, cfg.Layout.PackageRoot)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("JPROJ_TEMPLATE_MARKER", "env_marker")
		t.Setenv("JPROJ_LAYOUT_PACKAGEROOT", "scala")

		configFile := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env_marker", cfg.Template.Marker)
		assert.Equal(t, "scala", cfg.Layout.PackageRoot)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("JPROJ_ENTRY_EXTENSION", "groovy")

		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("entry:\n  extension: kt\n"), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "groovy", cfg.Entry.Extension)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("template: [unclosed\n"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("template:\n  key: paths\n"), 0o644))

	cfg, err := NewLoader().LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.Equal(t, "paths", cfg.Template.Key)
	assert.Equal(t, DefaultMarker, cfg.Template.Marker)
	assert.Equal(t, DefaultPackageRoot, cfg.Layout.PackageRoot)
}

func TestConfigFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte(""), 0o644))

	ok, err := ConfigFileExists(existing)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ConfigFileExists(filepath.Join(tmpDir, "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, ok)
}
