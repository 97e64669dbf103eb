package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opmodel/jproj/internal/namespace"
	"github.com/opmodel/jproj/internal/output"
)

// DefaultExtension is the entry file extension, without the dot.
const DefaultExtension = "java"

// Generator writes entry files into package directories.
type Generator struct {
	// ProjectRoot is the directory namespaces are derived against.
	ProjectRoot string

	// Extension is the file extension without the dot. Empty means
	// DefaultExtension.
	Extension string

	// Separator is the path separator used in ProjectRoot and package
	// directories.
	Separator rune
}

// NewGenerator creates a generator for projectRoot.
func NewGenerator(projectRoot, extension string, sep rune) *Generator {
	return &Generator{ProjectRoot: projectRoot, Extension: extension, Separator: sep}
}

// Path returns the entry file path for pkg inside dir.
func (g *Generator) Path(dir, pkg string) string {
	ext := g.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	return filepath.Join(dir, pkg+"."+ext)
}

// Generate renders the entry file for pkg and writes it into dir, replacing
// any existing file. The returned result is non-nil even on error so the
// caller can report the path.
func (g *Generator) Generate(dir, pkg string) (*GenerateResult, error) {
	result := &GenerateResult{Path: g.Path(dir, pkg)}

	ns, err := namespace.Derive(dir, g.ProjectRoot, g.Separator)
	if err != nil {
		return result, fmt.Errorf("deriving namespace for %s: %w", dir, err)
	}
	result.Namespace = ns

	content, err := Render(EntryData{Package: pkg, Namespace: ns})
	if err != nil {
		return result, err
	}

	if err := os.WriteFile(result.Path, content, 0o644); err != nil {
		return result, fmt.Errorf("writing %s: %w", result.Path, err)
	}

	output.Debug("wrote entry file", "path", result.Path, "namespace", ns)
	return result, nil
}
