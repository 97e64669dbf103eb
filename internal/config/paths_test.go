package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err, "should get home directory")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no tilde", "/absolute/path", "/absolute/path"},
		{"relative path without tilde", "relative/path", "relative/path"},
		{"tilde only", "~", homeDir},
		{"tilde with slash", "~/.jproj/config.yaml", filepath.Join(homeDir, ".jproj", "config.yaml")},
		{"tilde username pattern (not expanded)", "~username/file", "~username/file"},
		{"tilde in middle (not expanded)", "/path/~/file", "/path/~/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpHome, ".jproj"), paths.HomeDir)
	assert.Equal(t, filepath.Join(tmpHome, ".jproj", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env takes precedence", func(t *testing.T) {
		t.Setenv("JPROJ_CONFIG", "/custom/config.yaml")
		got, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config.yaml", got)
	})

	t.Run("falls back to home", func(t *testing.T) {
		tmpHome := t.TempDir()
		t.Setenv("HOME", tmpHome)
		t.Setenv("JPROJ_CONFIG", "")
		got, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpHome, ".jproj", "config.yaml"), got)
	})
}
