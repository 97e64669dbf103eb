// Package layout resolves the directory template a project is scaffolded
// from: the built-in default or an override file found in the root
// directory.
package layout

import (
	"path/filepath"
	"slices"
	"strings"
)

// HostSeparator is the native path separator, resolved once and threaded
// through normalization and namespace derivation.
const HostSeparator rune = filepath.Separator

// Source identifies where a template came from.
type Source string

const (
	// SourceDefault is the built-in template.
	SourceDefault Source = "default"

	// SourceOverride is a template read from an override file.
	SourceOverride Source = "override"
)

// DefaultName is the name of the built-in template.
const DefaultName = "default"

// Template is an ordered list of directory paths relative to the project root.
type Template struct {
	// Name is the key the paths were read from, or DefaultName.
	Name string `json:"name" yaml:"name"`

	// Source reports whether the template is built in or an override.
	Source Source `json:"source" yaml:"source"`

	// File is the override file the template was read from, if any.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Paths are the directories to create, in order.
	Paths []string `json:"paths" yaml:"paths"`
}

// defaultPaths covers build, doc, lib and src trees for the main and test
// source roots, each split into groovy and java.
var defaultPaths = []string{
	"build/test/classes",
	"build/test/reports",
	"doc",
	"lib",
	"src/main/groovy",
	"src/main/java",
	"src/test/groovy",
	"src/test/java",
}

// Default returns the built-in template.
func Default() Template {
	return Template{
		Name:   DefaultName,
		Source: SourceDefault,
		Paths:  slices.Clone(defaultPaths),
	}
}

// Len returns the number of paths.
func (t Template) Len() int {
	return len(t.Paths)
}

// Normalize rewrites forward slashes in every path to sep. Nothing else
// changes. The returned template does not share storage with t.
func Normalize(t Template, sep rune) Template {
	out := t
	out.Paths = slices.Clone(t.Paths)
	if sep == '/' {
		return out
	}
	for i, p := range out.Paths {
		out.Paths[i] = strings.ReplaceAll(p, "/", string(sep))
	}
	return out
}
