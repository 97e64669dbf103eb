package namespace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/jproj/internal/errors"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		root string
		sep  rune
		want string
	}{
		{
			name: "package root",
			dir:  "/x/MyProj/src/main/java",
			root: "/x/MyProj",
			sep:  '/',
			want: "src.main.java",
		},
		{
			name: "package directory",
			dir:  "/x/MyProj/src/main/java/foo",
			root: "/x/MyProj",
			sep:  '/',
			want: "src.main.java.foo",
		},
		{
			name: "trailing separator on root",
			dir:  "/x/MyProj/lib",
			root: "/x/MyProj/",
			sep:  '/',
			want: "lib",
		},
		{
			name: "root name repeated below the root",
			dir:  "/x/MyProj/MyProj/java",
			root: "/x/MyProj",
			sep:  '/',
			want: "MyProj.java",
		},
		{
			name: "backslash host",
			dir:  `C:\work\MyProj\src\main\java`,
			root: `C:\work\MyProj`,
			sep:  '\\',
			want: "src.main.java",
		},
		{
			name: "doubled separators are collapsed",
			dir:  "/x/MyProj/src//main/java/",
			root: "/x/MyProj",
			sep:  '/',
			want: "src.main.java",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.dir, tt.root, tt.sep)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerive_SameTokensOnEveryHost(t *testing.T) {
	unix, err := Derive("/x/MyProj/src/test/groovy/util", "/x/MyProj", '/')
	require.NoError(t, err)

	windows, err := Derive(`D:\x\MyProj\src\test\groovy\util`, `D:\x\MyProj`, '\\')
	require.NoError(t, err)

	assert.Equal(t, unix, windows)
}

func TestDerive_Invariant(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		root string
	}{
		{"outside root", "/y/Other/src/main/java", "/x/MyProj"},
		{"sibling with shared prefix", "/x/MyProjOld/src", "/x/MyProj"},
		{"root itself", "/x/MyProj", "/x/MyProj"},
		{"root with trailing separator", "/x/MyProj/", "/x/MyProj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Derive(tt.dir, tt.root, '/')
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrInvariant))
		})
	}
}
