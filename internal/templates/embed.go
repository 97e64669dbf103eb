package templates

import (
	"embed"
)

//go:embed java/*
var javaFS embed.FS

// EntryTemplate is the path of the entry file template in the embedded
// filesystem.
const EntryTemplate = "java/Entry.java.tmpl"
