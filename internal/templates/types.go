// Package templates renders and writes the entry-point source files placed in
// package directories.
package templates

// EntryData holds the data passed to the entry file template.
type EntryData struct {
	// Package is the package name. It is also the class name.
	Package string

	// Namespace is the dotted namespace of the package directory.
	Namespace string
}

// GenerateResult describes one entry file.
type GenerateResult struct {
	// Path is the absolute path of the entry file.
	Path string

	// Namespace is the namespace stamped into the file.
	Namespace string
}
