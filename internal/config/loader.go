package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix turns template.marker into JPROJ_TEMPLATE_MARKER.
const envPrefix = "JPROJ"

// envKeys are bound explicitly so Unmarshal sees env values for keys the
// config file does not mention.
var envKeys = []string{
	"template.marker",
	"template.extension",
	"template.key",
	"layout.packageRoot",
	"entry.extension",
	"log.timestamps",
}

// Loader reads a YAML config file and overlays JPROJ_* environment variables.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a loader with environment bindings in place.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}
	return &Loader{v: v}
}

// Load reads configFile, or the default config file when it is empty. A
// missing file yields an empty Config; environment values still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	path, err := expandedConfigFile(configFile)
	if err != nil {
		return nil, err
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil && !isMissingFile(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadWithDefaults is Load followed by WithDefaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}

// ConfigFileExists reports whether configFile, or the default config file
// when it is empty, exists.
func ConfigFileExists(configFile string) (bool, error) {
	path, err := expandedConfigFile(configFile)
	if err != nil {
		return false, err
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

func expandedConfigFile(configFile string) (string, error) {
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	path, err := ExpandPath(configFile)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return path, nil
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
