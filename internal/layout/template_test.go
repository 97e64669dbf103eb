package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	tmpl := Default()

	assert.Equal(t, DefaultName, tmpl.Name)
	assert.Equal(t, SourceDefault, tmpl.Source)
	assert.Empty(t, tmpl.File)
	assert.Equal(t, []string{
		"build/test/classes",
		"build/test/reports",
		"doc",
		"lib",
		"src/main/groovy",
		"src/main/java",
		"src/test/groovy",
		"src/test/java",
	}, tmpl.Paths)
	assert.Equal(t, 8, tmpl.Len())
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a.Paths[0] = "mutated"

	assert.Equal(t, "build/test/classes", Default().Paths[0])
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		sep  rune
		in   []string
		want []string
	}{
		{
			name: "slash host is unchanged",
			sep:  '/',
			in:   []string{"src/main/java", "doc"},
			want: []string{"src/main/java", "doc"},
		},
		{
			name: "backslash host replaces every slash",
			sep:  '\\',
			in:   []string{"src/main/java", "build/test/classes", "doc"},
			want: []string{`src\main\java`, `build\test\classes`, "doc"},
		},
		{
			name: "empty template",
			sep:  '\\',
			in:   []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Template{Name: "t", Paths: tt.in}
			got := Normalize(in, tt.sep)
			assert.Equal(t, tt.want, got.Paths)
			assert.Equal(t, "t", got.Name)
		})
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := Default()
	_ = Normalize(in, '\\')
	assert.Equal(t, "src/main/java", in.Paths[5])
}

func TestNormalize_DefaultOnBackslashHost(t *testing.T) {
	got := Normalize(Default(), '\\')
	for _, p := range got.Paths {
		assert.NotContains(t, p, "/")
	}
	assert.Equal(t, `src\test\java`, got.Paths[7])
}
