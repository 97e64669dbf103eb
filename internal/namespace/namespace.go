// Package namespace derives the dotted namespace stamped into generated entry
// files from the position of a package directory under the project root.
package namespace

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/jproj/internal/errors"
)

// Derive returns the dotted namespace of dir relative to projectRoot. Both
// paths use sep as their separator.
//
// dir must live strictly below projectRoot: it has to start with the root
// followed by a separator and have a non-empty remainder. Otherwise Derive
// returns an error wrapping ErrInvariant.
//
//	Derive("/x/MyProj/src/main/java", "/x/MyProj", '/')  // "src.main.java"
func Derive(dir, projectRoot string, sep rune) (string, error) {
	s := string(sep)

	root := strings.TrimRight(projectRoot, s)
	prefix := root + s

	if !strings.HasPrefix(dir, prefix) {
		return "", fmt.Errorf("%w: %q is not under project root %q", oerrors.ErrInvariant, dir, projectRoot)
	}

	var tokens []string
	for _, seg := range strings.Split(dir[len(prefix):], s) {
		if seg != "" {
			tokens = append(tokens, seg)
		}
	}

	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: %q is the project root itself", oerrors.ErrInvariant, dir)
	}

	return strings.Join(tokens, "."), nil
}
