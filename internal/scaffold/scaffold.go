// Package scaffold materializes a project tree from a resolved template:
// template directories, package directories under every package root and
// optional entry files.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opmodel/jproj/internal/layout"
	"github.com/opmodel/jproj/internal/output"
	"github.com/opmodel/jproj/internal/templates"
)

// DefaultSentinel is the final path segment that marks a package root.
const DefaultSentinel = "java"

// Options configures Run.
type Options struct {
	// Root is the confirmed root directory. It is created if missing.
	Root string

	// NewProject names a project directory created under Root. Empty means
	// Root is the project root.
	NewProject string

	// Packages are the package names to create under every package root.
	Packages []string

	// CreateFiles writes an entry file into every package directory.
	CreateFiles bool

	// Sentinel marks package roots. Empty means DefaultSentinel.
	Sentinel string

	// Extension is the entry file extension without the dot.
	Extension string

	// Separator is the host path separator. Zero means layout.HostSeparator.
	Separator rune

	// Resolve configures override lookup in Root.
	Resolve layout.ResolveOptions
}

// Report summarizes one run.
type Report struct {
	ProjectRoot    string        `json:"projectRoot" yaml:"projectRoot"`
	TemplateName   string        `json:"template" yaml:"template"`
	TemplateSource layout.Source `json:"source" yaml:"source"`
	TemplateFile   string        `json:"file,omitempty" yaml:"file,omitempty"`
	Warnings       []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Directories    []Outcome     `json:"directories" yaml:"directories"`
	PackageRoots   []string      `json:"packageRoots" yaml:"packageRoots"`
	Packages       []Outcome     `json:"packages,omitempty" yaml:"packages,omitempty"`
	Files          []FileOutcome `json:"files,omitempty" yaml:"files,omitempty"`
}

// Failures returns the failed directory and package outcomes.
func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Directories {
		if o.Failed() {
			out = append(out, o)
		}
	}
	for _, o := range r.Packages {
		if o.Failed() {
			out = append(out, o)
		}
	}
	return out
}

// FileFailures returns the entry files that could not be written.
func (r *Report) FileFailures() []FileOutcome {
	var out []FileOutcome
	for _, f := range r.Files {
		if f.Failed() {
			out = append(out, f)
		}
	}
	return out
}

// Run scaffolds a project. It returns an error only for failures that stop
// the run: an unreadable root, a malformed override or a project directory
// that cannot be created. Everything else is recorded in the Report.
func Run(opts Options) (*Report, error) {
	if opts.Sentinel == "" {
		opts.Sentinel = DefaultSentinel
	}
	if opts.Separator == 0 {
		opts.Separator = layout.HostSeparator
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", opts.Root, err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		output.Warn("error creating root directory", "path", root, "err", err)
	}

	resolution, err := layout.Resolve(root, opts.Resolve)
	if err != nil {
		return nil, fmt.Errorf("resolving template: %w", err)
	}
	tmpl := layout.Normalize(resolution.TemplateOrDefault(), opts.Separator)

	projectRoot := root
	if opts.NewProject != "" {
		projectRoot = filepath.Join(root, opts.NewProject)
		if err := os.MkdirAll(projectRoot, 0o755); err != nil {
			return nil, fmt.Errorf("creating project directory %s: %w", projectRoot, err)
		}
	}

	log := output.ProjectLogger(filepath.Base(projectRoot))
	log.Info("scaffolding project", "root", projectRoot, "template", tmpl.Name, "paths", tmpl.Len())

	tree := MaterializeTree(projectRoot, tmpl, opts.Sentinel)

	report := &Report{
		ProjectRoot:    projectRoot,
		TemplateName:   tmpl.Name,
		TemplateSource: tmpl.Source,
		TemplateFile:   tmpl.File,
		Warnings:       resolution.Warnings,
		Directories:    tree.Directories,
		PackageRoots:   tree.Roots.Sorted(),
	}

	switch {
	case len(opts.Packages) == 0:
		if opts.CreateFiles {
			log.Debug("no packages requested, entry files skipped")
		}
	case tree.Roots.Len() == 0:
		log.Warn("template has no package roots, packages skipped", "sentinel", opts.Sentinel)
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("template has no %q directory, packages skipped", opts.Sentinel))
	default:
		pkgs := MaterializePackages(PackageOptions{
			ProjectRoot: projectRoot,
			Roots:       tree.Roots,
			Packages:    opts.Packages,
			CreateFiles: opts.CreateFiles,
			Generator:   templates.NewGenerator(projectRoot, opts.Extension, opts.Separator),
		})
		report.Packages = pkgs.Packages
		report.Files = pkgs.Files
	}

	log.Info("scaffolding complete",
		"directories", len(report.Directories),
		"packages", len(report.Packages),
		"files", len(report.Files),
		"failures", len(report.Failures())+len(report.FileFailures()))

	return report, nil
}
