package config

import (
	"os"

	"github.com/opmodel/jproj/internal/output"
)

// ConfigSource names where the config file path came from.
type ConfigSource string

const (
	SourceFlag    ConfigSource = "flag"
	SourceEnv     ConfigSource = "env"
	SourceDefault ConfigSource = "default"
)

// configEnvVar overrides the default config file location.
const configEnvVar = "JPROJ_CONFIG"

// ResolveConfigPathOptions holds the --config flag value, empty when unset.
type ResolveConfigPathOptions struct {
	FlagValue string
}

// ResolveConfigPathResult is the winning config path plus every lower
// precedence candidate it shadowed.
type ResolveConfigPathResult struct {
	ConfigPath string
	Source     ConfigSource
	Shadowed   map[ConfigSource]string
}

// ResolveConfigPath picks the config file path. Precedence is the --config
// flag, then JPROJ_CONFIG, then ~/.jproj/config.yaml.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolveConfigPathResult{Shadowed: map[ConfigSource]string{}}, err
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, os.Getenv(configEnvVar)},
		{SourceDefault, paths.ConfigFile},
	}

	result := ResolveConfigPathResult{Shadowed: map[ConfigSource]string{}}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.ConfigPath = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result, nil
}

// LogResolved logs the chosen path and the shadowed candidates at DEBUG.
func (r ResolveConfigPathResult) LogResolved() {
	output.Debug("config path resolved", "path", r.ConfigPath, "source", r.Source)
	for source, path := range r.Shadowed {
		output.Debug("config path shadowed", "source", source, "path", path)
	}
}
