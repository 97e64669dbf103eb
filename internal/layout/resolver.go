package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/jproj/internal/errors"
	"github.com/opmodel/jproj/internal/output"
)

// ResolveOptions configures how an override file is located and read.
type ResolveOptions struct {
	// Marker must be contained in the override file name.
	Marker string

	// Extension must end the override file name, including the dot.
	Extension string

	// Key selects the list in the override object. Empty selects the first.
	Key string
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	// Template is the override template. It is only meaningful when Found.
	Template Template

	// Found reports whether an override was read. When false the caller
	// substitutes Default().
	Found bool

	// Warnings explains why no override was used or what was ignored.
	Warnings []string
}

// TemplateOrDefault returns the override template when one was found and
// the built-in default otherwise.
func (r *Resolution) TemplateOrDefault() Template {
	if r.Found {
		return r.Template
	}
	return Default()
}

func (r *Resolution) warn(msg string, keyvals ...interface{}) {
	r.Warnings = append(r.Warnings, msg)
	output.Warn(msg, keyvals...)
}

// Resolve looks for an override template in the immediate entries of root.
//
// An empty root or a root without a matching file is not an error: the
// returned Resolution has Found set to false and carries a warning. A
// matching file that cannot be parsed is a malformed template error.
func Resolve(root string, opts ResolveOptions) (*Resolution, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("listing root directory: %v", err), root,
			"Create the directory first or choose another root.")
	}

	res := &Resolution{}

	if len(entries) == 0 {
		res.warn("no files found, using default template", "root", root)
		return res, nil
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.Contains(name, opts.Marker) && strings.HasSuffix(name, opts.Extension) {
			matches = append(matches, name)
		}
	}

	if len(matches) == 0 {
		res.warn("no template file found, using default template",
			"root", root, "marker", opts.Marker, "extension", opts.Extension)
		return res, nil
	}

	// ReadDir sorts by name, so the choice is stable across runs.
	if len(matches) > 1 {
		res.warn("several template files found, using the first",
			"using", matches[0], "ignored", strings.Join(matches[1:], ", "))
	}

	file := filepath.Join(root, matches[0])
	output.Info("found template file, retrieving data", "file", file)

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading template file %s: %w", file, err)
	}

	override, err := ParseOverride(file, data, opts.Key)
	if err != nil {
		return nil, err
	}

	if opts.Key == "" && len(override.Keys) > 1 {
		res.warn("template file has several keys, using the first",
			"using", override.Keys[0], "keys", strings.Join(override.Keys, ", "))
	}

	res.Template = override.Template
	res.Found = true
	return res, nil
}
