package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opmodel/jproj/internal/layout"
	"github.com/opmodel/jproj/internal/output"
)

// TreeResult is the outcome of MaterializeTree.
type TreeResult struct {
	// Directories holds one outcome per template entry, in template order.
	Directories []Outcome

	// Roots holds every entry whose final segment equals the sentinel.
	Roots *RootSet
}

// MaterializeTree creates every directory of tmpl under projectRoot. Entries
// must already be normalized for the host.
//
// Entries that resolve outside projectRoot are recorded as failed and never
// created. Existing directories are left alone. A directory that cannot be created is
// logged as a warning and recorded as failed; the walk continues. An entry
// whose final segment equals sentinel is a package root whether or not it
// was created.
func MaterializeTree(projectRoot string, tmpl layout.Template, sentinel string) *TreeResult {
	result := &TreeResult{
		Directories: make([]Outcome, 0, len(tmpl.Paths)),
		Roots:       NewRootSet(),
	}

	for _, entry := range tmpl.Paths {
		if entry == "" {
			err := errors.New("empty template path")
			output.Warn("skipping template entry", "err", err)
			result.Directories = append(result.Directories, failedOutcome(projectRoot, "", err))
			continue
		}

		model := filepath.Join(projectRoot, entry)
		rel := relPath(projectRoot, model)

		if filepath.IsAbs(entry) || filepath.VolumeName(entry) != "" || !within(rel) {
			err := fmt.Errorf("template path %s is outside the project root", entry)
			output.Warn("skipping template entry", "path", entry, "err", err)
			result.Directories = append(result.Directories, failedOutcome(model, entry, err))
			continue
		}

		if filepath.Base(model) == sentinel {
			result.Roots.Add(model)
		}

		if _, err := os.Stat(model); err == nil {
			output.Debug("path exists", "path", rel)
			result.Directories = append(result.Directories, Outcome{Path: model, Rel: rel, Status: StatusExists})
			continue
		}

		if err := os.MkdirAll(model, 0o755); err != nil {
			output.Warn("error creating template folder", "path", rel, "err", err)
			result.Directories = append(result.Directories,
				failedOutcome(model, rel, fmt.Errorf("creating %s: %w", rel, err)))
			continue
		}

		output.Debug("created directory", "path", rel)
		result.Directories = append(result.Directories, Outcome{Path: model, Rel: rel, Status: StatusCreated})
	}

	return result
}

// within reports whether a path relative to the project root stays inside it.
func within(rel string) bool {
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// relPath returns path relative to base, or path itself when it is not
// below base.
func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
