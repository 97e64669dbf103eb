// Package config provides configuration loading and management.
package config

// Defaults for every configuration key.
const (
	// DefaultMarker is the substring an override template file name must contain.
	DefaultMarker = "template_paths"

	// DefaultTemplateExtension is the extension of override template files.
	DefaultTemplateExtension = ".json"

	// DefaultPackageRoot is the final path segment that flags a package root.
	DefaultPackageRoot = "java"

	// DefaultEntryExtension is the extension of generated entry files.
	DefaultEntryExtension = "java"
)

// TemplateConfig controls how override templates are located and read.
type TemplateConfig struct {
	// Marker is matched as a substring of the override file name.
	// Env: JPROJ_TEMPLATE_MARKER, Default: template_paths
	Marker string `mapstructure:"marker" yaml:"marker,omitempty" json:"marker,omitempty"`

	// Extension is the required suffix of the override file name.
	// Env: JPROJ_TEMPLATE_EXTENSION, Default: .json
	Extension string `mapstructure:"extension" yaml:"extension,omitempty" json:"extension,omitempty"`

	// Key selects the list to use from the override object. When empty the
	// first key in document order is used.
	// Env: JPROJ_TEMPLATE_KEY
	Key string `mapstructure:"key" yaml:"key,omitempty" json:"key,omitempty"`
}

// LayoutConfig controls tree materialization.
type LayoutConfig struct {
	// PackageRoot is the sentinel directory name that marks a package root.
	// Env: JPROJ_LAYOUT_PACKAGEROOT, Default: java
	PackageRoot string `mapstructure:"packageRoot" yaml:"packageRoot,omitempty" json:"packageRoot,omitempty"`
}

// EntryConfig controls entry file generation.
type EntryConfig struct {
	// Extension is the file extension of generated entry files, without dot.
	// Env: JPROJ_ENTRY_EXTENSION, Default: java
	Extension string `mapstructure:"extension" yaml:"extension,omitempty" json:"extension,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the jproj configuration.
// Loaded from ~/.jproj/config.yaml.
type Config struct {
	Template TemplateConfig `mapstructure:"template" yaml:"template" json:"template"`
	Layout   LayoutConfig   `mapstructure:"layout" yaml:"layout" json:"layout"`
	Entry    EntryConfig    `mapstructure:"entry" yaml:"entry" json:"entry"`
	Log      LogConfig      `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `jproj config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Template: TemplateConfig{
			Marker:    DefaultMarker,
			Extension: DefaultTemplateExtension,
		},
		Layout: LayoutConfig{
			PackageRoot: DefaultPackageRoot,
		},
		Entry: EntryConfig{
			Extension: DefaultEntryExtension,
		},
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Template.Marker == "" {
		out.Template.Marker = DefaultMarker
	}
	if out.Template.Extension == "" {
		out.Template.Extension = DefaultTemplateExtension
	}
	if out.Layout.PackageRoot == "" {
		out.Layout.PackageRoot = DefaultPackageRoot
	}
	if out.Entry.Extension == "" {
		out.Entry.Extension = DefaultEntryExtension
	}
	return &out
}
