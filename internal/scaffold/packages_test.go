package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/jproj/internal/layout"
	"github.com/opmodel/jproj/internal/templates"
)

func packageRoots(t *testing.T, root string) *RootSet {
	t.Helper()
	tree := MaterializeTree(root, normalizedDefault(), "java")
	require.Equal(t, 2, tree.Roots.Len())
	return tree.Roots
}

func TestMaterializePackages_CrossProduct(t *testing.T) {
	root := t.TempDir()

	result := MaterializePackages(PackageOptions{
		ProjectRoot: root,
		Roots:       packageRoots(t, root),
		Packages:    []string{"foo", "bar"},
	})

	require.Len(t, result.Packages, 4)
	assert.Empty(t, result.Files)

	for _, rel := range []string{"src/main/java/foo", "src/main/java/bar", "src/test/java/foo", "src/test/java/bar"} {
		assert.DirExists(t, filepath.Join(root, filepath.FromSlash(rel)))
	}
	for _, o := range result.Packages {
		assert.Equal(t, StatusCreated, o.Status, o.Rel)
	}
}

func TestMaterializePackages_Order(t *testing.T) {
	root := t.TempDir()

	result := MaterializePackages(PackageOptions{
		ProjectRoot: root,
		Roots:       packageRoots(t, root),
		Packages:    []string{"zed", "alpha"},
	})

	var rels []string
	for _, o := range result.Packages {
		rels = append(rels, filepath.ToSlash(o.Rel))
	}
	assert.Equal(t, []string{
		"src/main/java/zed",
		"src/main/java/alpha",
		"src/test/java/zed",
		"src/test/java/alpha",
	}, rels)
}

func TestMaterializePackages_Duplicates(t *testing.T) {
	root := t.TempDir()

	result := MaterializePackages(PackageOptions{
		ProjectRoot: root,
		Roots:       packageRoots(t, root),
		Packages:    []string{"foo", "foo", "", "foo"},
	})

	assert.Len(t, result.Packages, 2)
}

func TestMaterializePackages_Existing(t *testing.T) {
	root := t.TempDir()
	roots := packageRoots(t, root)
	require.NoError(t, os.Mkdir(filepath.Join(root, "src", "main", "java", "foo"), 0o755))

	result := MaterializePackages(PackageOptions{ProjectRoot: root, Roots: roots, Packages: []string{"foo"}})

	got := statuses(result.Packages)
	assert.Equal(t, StatusExists, got["src/main/java/foo"])
	assert.Equal(t, StatusCreated, got["src/test/java/foo"])
}

func TestMaterializePackages_NoRoots(t *testing.T) {
	root := t.TempDir()

	result := MaterializePackages(PackageOptions{ProjectRoot: root, Roots: NewRootSet(), Packages: []string{"foo"}})

	assert.Empty(t, result.Packages)
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMaterializePackages_Files(t *testing.T) {
	root := t.TempDir()

	result := MaterializePackages(PackageOptions{
		ProjectRoot: root,
		Roots:       packageRoots(t, root),
		Packages:    []string{"foo"},
		CreateFiles: true,
		Generator:   templates.NewGenerator(root, "java", layout.HostSeparator),
	})

	require.Len(t, result.Files, 2)
	namespaces := map[string]string{}
	for _, f := range result.Files {
		assert.Equal(t, StatusWritten, f.Status)
		assert.FileExists(t, f.Path)
		namespaces[filepath.ToSlash(f.Rel)] = f.Namespace
	}
	assert.Equal(t, map[string]string{
		"src/main/java/foo/foo.java": "src.main.java.foo",
		"src/test/java/foo/foo.java": "src.test.java.foo",
	}, namespaces)
}

func TestMaterializePackages_FileFailureContinues(t *testing.T) {
	root := t.TempDir()
	roots := packageRoots(t, root)
	// A directory where the entry file should go makes the write fail.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "main", "java", "foo", "foo.java"), 0o755))

	result := MaterializePackages(PackageOptions{
		ProjectRoot: root,
		Roots:       roots,
		Packages:    []string{"foo"},
		CreateFiles: true,
		Generator:   templates.NewGenerator(root, "java", layout.HostSeparator),
	})

	require.Len(t, result.Files, 2)
	assert.Equal(t, StatusFailed, result.Files[0].Status)
	assert.Error(t, result.Files[0].Err)
	assert.Equal(t, StatusWritten, result.Files[1].Status)
	assert.FileExists(t, filepath.Join(root, "src", "test", "java", "foo", "foo.java"))
}

func TestMaterializePackages_NamesMustBeSingleSegments(t *testing.T) {
	root := t.TempDir()

	result := MaterializePackages(PackageOptions{
		ProjectRoot: root,
		Roots:       packageRoots(t, root),
		Packages:    []string{"..", ".", "a/b", `c\d`, "foo"},
		CreateFiles: true,
		Generator:   templates.NewGenerator(root, "java", layout.HostSeparator),
	})

	require.Len(t, result.Packages, 10)
	failed := 0
	for _, o := range result.Packages {
		if o.Failed() {
			failed++
			assert.Error(t, o.Err)
		}
	}
	assert.Equal(t, 8, failed)

	require.Len(t, result.Files, 2, "only the valid package gets entry files")
	for _, f := range result.Files {
		assert.Equal(t, StatusWritten, f.Status)
	}

	assert.NoFileExists(t, filepath.Join(root, "src", "main", "...java"))
	assert.NoDirExists(t, filepath.Join(root, "src", "main", "java", "a"))
	assert.DirExists(t, filepath.Join(root, "src", "main", "java", "foo"))
}
