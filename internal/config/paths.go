package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths are the jproj locations under the user's home directory.
type Paths struct {
	HomeDir    string // ~/.jproj
	ConfigFile string // ~/.jproj/config.yaml
}

// DefaultPaths returns the jproj paths for the current user.
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(home, ".jproj")
	return &Paths{
		HomeDir:    dir,
		ConfigFile: filepath.Join(dir, "config.yaml"),
	}, nil
}

// GetConfigFile returns JPROJ_CONFIG when set, otherwise the default config
// file path.
func GetConfigFile() (string, error) {
	if p := os.Getenv(configEnvVar); p != "" {
		return p, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

// ExpandPath replaces a leading "~" or "~/" with the home directory. Other
// forms, including "~user", are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
