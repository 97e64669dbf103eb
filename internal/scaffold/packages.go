package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opmodel/jproj/internal/output"
	"github.com/opmodel/jproj/internal/templates"
)

// PackageOptions configures MaterializePackages.
type PackageOptions struct {
	// ProjectRoot is used for relative paths in outcomes.
	ProjectRoot string

	// Roots are the package roots to create packages under.
	Roots *RootSet

	// Packages are the requested package names. Duplicates are ignored.
	Packages []string

	// CreateFiles writes an entry file into every package directory.
	CreateFiles bool

	// Generator writes entry files. Required when CreateFiles is set.
	Generator *templates.Generator
}

// PackageResult is the outcome of MaterializePackages.
type PackageResult struct {
	Packages []Outcome
	Files    []FileOutcome
}

// MaterializePackages creates one directory per (root, package) pair and,
// when requested, an entry file inside it. Each pair is processed once.
// Roots are visited in lexical order and packages in request order.
//
// A name that is not a single path segment fails for every root and is
// never turned into a path. Failures are recorded and processing continues: a directory failure is a
// warning, a file failure is an error.
func MaterializePackages(opts PackageOptions) *PackageResult {
	result := &PackageResult{}
	if opts.Roots == nil || opts.Roots.Len() == 0 {
		return result
	}

	names := uniqueNames(opts.Packages)
	for _, name := range names {
		if err := templates.ValidateIdentifier(name); err != nil {
			output.Warn("package name is not a valid identifier", "package", name, "err", err)
		}
	}

	for _, root := range opts.Roots.Sorted() {
		for _, name := range names {
			if err := checkPackageName(name); err != nil {
				sep := string(filepath.Separator)
				output.Warn("skipping package", "package", name, "err", err)
				result.Packages = append(result.Packages,
					failedOutcome(root+sep+name, relPath(opts.ProjectRoot, root)+sep+name, err))
				continue
			}

			dir := filepath.Join(root, name)
			rel := relPath(opts.ProjectRoot, dir)

			result.Packages = append(result.Packages, ensurePackageDir(dir, rel))

			if opts.CreateFiles {
				result.Files = append(result.Files, writeEntryFile(opts, dir, name))
			}
		}
	}

	return result
}

func ensurePackageDir(dir, rel string) Outcome {
	if _, err := os.Stat(dir); err == nil {
		output.Debug("package exists", "path", rel)
		return Outcome{Path: dir, Rel: rel, Status: StatusExists}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		output.Warn("error creating package folder", "path", rel, "err", err)
		return failedOutcome(dir, rel, fmt.Errorf("creating package %s: %w", rel, err))
	}

	output.Debug("created package", "path", rel)
	return Outcome{Path: dir, Rel: rel, Status: StatusCreated}
}

func writeEntryFile(opts PackageOptions, dir, name string) FileOutcome {
	res, err := opts.Generator.Generate(dir, name)

	out := FileOutcome{Path: res.Path, Rel: relPath(opts.ProjectRoot, res.Path), Namespace: res.Namespace}
	if err != nil {
		output.Error("error writing entry file", "path", out.Rel, "err", err)
		out.Status = StatusFailed
		out.Err = err
		out.Message = err.Error()
		return out
	}

	out.Status = StatusWritten
	return out
}

// checkPackageName rejects names that would not name a direct child of a
// package root.
func checkPackageName(name string) error {
	switch {
	case name == "." || name == "..":
		return fmt.Errorf("package name %q is not a directory name", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("package name %q contains a path separator", name)
	default:
		return nil
	}
}

// uniqueNames drops empty and repeated names, keeping first occurrences.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
