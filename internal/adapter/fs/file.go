package fs

import (
	"os"
	"path/filepath"
	"strings"

	"jaldh/internal/port"
)

var (
	_ port.FileReader = (*Files)(nil)
	_ port.FileWriter = (*Files)(nil)
)

// Files reads and writes source files on the local filesystem.
type Files struct{}

func NewFiles() *Files {
	return &Files{}
}

func (f *Files) ReadFile(path string) (string, error) {
	return ReadFile(path)
}

// WriteFile replaces path with content atomically: the data goes to a
// temporary file in the same directory which is then renamed over path.
// An existing file keeps its permission bits.
func (f *Files) WriteFile(path, content string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PrefixedPath returns the sibling of path whose base name carries prefix,
// e.g. ("src/a.c", "doc_") -> "src/doc_a.c".
func PrefixedPath(path, prefix string) string {
	if strings.TrimSpace(prefix) == "" {
		return path
	}
	return filepath.Join(filepath.Dir(path), prefix+filepath.Base(path))
}
