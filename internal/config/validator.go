package config

import (
	"strings"
)

// ValidationError is one rejected config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every rejected field of one config.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	lines := []string{"config validation failed:"}
	for _, v := range e {
		lines = append(lines, "  "+v.Field+": "+v.Message)
	}
	return strings.Join(lines, "\n") + "\n"
}

// fieldRule checks one field and returns a message when it is invalid.
type fieldRule struct {
	field string
	check func(*Config) string
}

var rules = []fieldRule{
	{"template.marker", func(c *Config) string {
		return notBlank(c.Template.Marker)
	}},
	{"template.extension", func(c *Config) string {
		if ext := c.Template.Extension; len(ext) < 2 || ext[0] != '.' {
			return "must start with a dot, e.g. .json"
		}
		return ""
	}},
	{"layout.packageRoot", func(c *Config) string {
		return singleSegment(c.Layout.PackageRoot)
	}},
	{"entry.extension", func(c *Config) string {
		if msg := singleSegment(c.Entry.Extension); msg != "" {
			return msg
		}
		if strings.HasPrefix(c.Entry.Extension, ".") {
			return "must not start with a dot"
		}
		return ""
	}},
}

// Validate checks a configuration with defaults applied. It returns
// ValidationErrors listing every bad field, in a fixed order.
func Validate(cfg *Config) error {
	var errs ValidationErrors
	for _, r := range rules {
		if msg := r.check(cfg); msg != "" {
			errs = append(errs, ValidationError{Field: r.field, Message: msg})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func notBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return "must not be empty or whitespace only"
	}
	return ""
}

func singleSegment(s string) string {
	if msg := notBlank(s); msg != "" {
		return msg
	}
	if strings.ContainsAny(s, `/\`) {
		return "must be a single path segment"
	}
	return ""
}
