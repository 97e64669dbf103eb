package scaffold

import "slices"

// RootSet is the set of package root directories found while materializing
// a template. Membership is by path.
type RootSet struct {
	paths map[string]struct{}
}

// NewRootSet creates an empty set.
func NewRootSet() *RootSet {
	return &RootSet{paths: make(map[string]struct{})}
}

// Add inserts path. Adding a path twice has no effect.
func (s *RootSet) Add(path string) {
	s.paths[path] = struct{}{}
}

// Len returns the number of paths.
func (s *RootSet) Len() int {
	return len(s.paths)
}

// Sorted returns the paths in lexical order.
func (s *RootSet) Sorted() []string {
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
