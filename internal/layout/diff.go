package layout

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"
)

// diffDocument is the YAML shape compared by Diff.
type diffDocument struct {
	Paths []string `json:"paths"`
}

// Diff returns a human-readable dyff report of the path changes from base to
// other. An empty string means both templates list the same paths.
func Diff(base, other Template, useColor bool) (string, error) {
	baseInput, err := templateInput(base)
	if err != nil {
		return "", fmt.Errorf("preparing %s template: %w", base.Name, err)
	}

	otherInput, err := templateInput(other)
	if err != nil {
		return "", fmt.Errorf("preparing %s template: %w", other.Name, err)
	}

	report, err := dyff.CompareInputFiles(baseInput, otherInput)
	if err != nil {
		return "", fmt.Errorf("comparing templates: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// templateInput renders t as a single YAML document for dyff.
func templateInput(t Template) (ytbx.InputFile, error) {
	paths := t.Paths
	if paths == nil {
		paths = []string{}
	}

	data, err := yaml.Marshal(diffDocument{Paths: paths})
	if err != nil {
		return ytbx.InputFile{}, err
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	location := t.File
	if location == "" {
		location = t.Name
	}

	return ytbx.InputFile{
		Location:  location,
		Documents: docs,
	}, nil
}
