package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// entryTemplate is parsed once from the embedded filesystem.
var entryTemplate = template.Must(template.ParseFS(javaFS, EntryTemplate))

// Render renders the entry file for data. The output depends only on data.
func Render(data EntryData) ([]byte, error) {
	if data.Package == "" {
		return nil, fmt.Errorf("rendering entry file: package name is empty")
	}
	if data.Namespace == "" {
		return nil, fmt.Errorf("rendering entry file for %s: namespace is empty", data.Package)
	}

	var buf bytes.Buffer
	if err := entryTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", EntryTemplate, err)
	}
	return buf.Bytes(), nil
}
