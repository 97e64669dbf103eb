package templates

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedEntryTemplate(t *testing.T) {
	entries, err := fs.ReadDir(javaFS, "java")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Entry.java.tmpl", entries[0].Name())

	src, err := fs.ReadFile(javaFS, EntryTemplate)
	require.NoError(t, err)
	assert.Contains(t, string(src), "{{ .Package }}")
	assert.Contains(t, string(src), "{{ .Namespace }}")
}
