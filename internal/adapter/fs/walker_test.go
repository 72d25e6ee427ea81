package fs

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
	}
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

func TestCollectNonRecursive(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.py", "b.c", "c.h", "d.cpp", "e.hpp", "f.cc", "README.md", "sub/g.py")

	files, err := NewWalker(nil, nil).Collect(root, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.py", "b.c", "c.h", "d.cpp", "e.hpp", "f.cc"}, relAll(t, root, files))
}

func TestCollectRecursive(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.py", "sub/g.py", "sub/deeper/h.c", "sub/notes.txt")

	files, err := NewWalker(nil, nil).Collect(root, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.py", "sub/deeper/h.c", "sub/g.py"}, relAll(t, root, files))
}

func TestCollectExcludes(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "main.c", "vendor/lib.c", ".git/hooks/x.py", "build/gen.h")

	w := NewWalker(nil, []string{"**/vendor/**", "**/.git/**", "build/*.h"})
	files, err := w.Collect(root, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.c"}, relAll(t, root, files))
}

func TestCollectMissingRoot(t *testing.T) {
	_, err := NewWalker(nil, nil).Collect(filepath.Join(t.TempDir(), "nope"), true)
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.c")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	f := NewFiles()
	require.NoError(t, f.WriteFile(path, "new content"))

	got, err := f.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new content", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteFileMissingDir(t *testing.T) {
	err := NewFiles().WriteFile(filepath.Join(t.TempDir(), "missing", "a.c"), "x")
	assert.Error(t, err)
}

func TestPrefixedPath(t *testing.T) {
	assert.Equal(t, filepath.Join("src", "doc_a.c"), PrefixedPath(filepath.Join("src", "a.c"), "doc_"))
	assert.Equal(t, "doc_a.c", PrefixedPath("a.c", "doc_"))
	assert.Equal(t, "a.c", PrefixedPath("a.c", ""))
}
