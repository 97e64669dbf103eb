package output

import (
	"path/filepath"
	"slices"
	"strings"
)

const (
	branchMid  = "├── "
	branchEnd  = "└── "
	guideOpen  = "│   "
	guideBlank = "    "

	// statusColumn is where descriptions start, measured on unstyled text.
	statusColumn = 40
)

// TreeEntry is one path to place in a rendered tree.
type TreeEntry struct {
	// Path is relative to the tree root, using either separator.
	Path string

	// Description is printed after the name, aligned to a fixed column.
	Description string

	// IsDir marks the leaf of Path as a directory.
	IsDir bool
}

type treeNode struct {
	name     string
	note     string
	dir      bool
	children map[string]*treeNode
}

func (n *treeNode) child(name string) *treeNode {
	if c, ok := n.children[name]; ok {
		return c
	}
	c := &treeNode{name: name, children: map[string]*treeNode{}}
	n.children[name] = c
	return c
}

// ordered returns directories first, then files, each sorted by name.
func (n *treeNode) ordered() []*treeNode {
	out := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *treeNode) int {
		if a.dir != b.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	return out
}

// RenderFileTree draws entries below rootName. Intermediate segments of a
// path become directories. Returns "" when entries is empty.
func RenderFileTree(rootName string, entries []TreeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, dir: true, children: map[string]*treeNode{}}
	for _, e := range entries {
		segments := splitTreePath(e.Path)
		node := root
		for i, seg := range segments {
			node = node.child(seg)
			if i < len(segments)-1 {
				node.dir = true
				continue
			}
			node.note = e.Description
			node.dir = node.dir || e.IsDir
		}
	}

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(rootName + "/"))
	sb.WriteByte('\n')
	writeChildren(&sb, root, "")
	return sb.String()
}

// RenderSimpleTree draws a tree of directories without descriptions.
func RenderSimpleTree(rootName string, dirs []string) string {
	entries := make([]TreeEntry, len(dirs))
	for i, d := range dirs {
		entries[i] = TreeEntry{Path: d, IsDir: true}
	}
	return RenderFileTree(rootName, entries)
}

func writeChildren(sb *strings.Builder, parent *treeNode, indent string) {
	kids := parent.ordered()
	for i, n := range kids {
		branch, guide := branchMid, guideOpen
		if i == len(kids)-1 {
			branch, guide = branchEnd, guideBlank
		}

		label := n.name
		if n.dir {
			label += "/"
		}

		sb.WriteString(StyleDim.Render(indent + branch))
		sb.WriteString(label)
		if n.note != "" {
			width := len([]rune(indent + branch + label))
			sb.WriteString(strings.Repeat(" ", max(statusColumn-width, 2)))
			sb.WriteString(n.note)
		}
		sb.WriteByte('\n')

		writeChildren(sb, n, indent+guide)
	}
}

// splitTreePath accepts both separators so native and slash paths render
// the same tree.
func splitTreePath(path string) []string {
	path = strings.ReplaceAll(filepath.ToSlash(path), `\`, "/")
	return slices.DeleteFunc(strings.Split(path, "/"), func(s string) bool {
		return s == "" || s == "."
	})
}
