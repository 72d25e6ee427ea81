package fs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"jaldh/internal/port"
)

var _ port.FileWalker = (*Walker)(nil)

// SupportedExtensions are the source file extensions the annotator handles.
var SupportedExtensions = []string{".py", ".c", ".h", ".cpp", ".hpp", ".cc"}

// DefaultIncludes matches every supported extension at any depth.
func DefaultIncludes() []string {
	includes := make([]string, 0, len(SupportedExtensions))
	for _, ext := range SupportedExtensions {
		includes = append(includes, "**/*"+ext)
	}
	return includes
}

type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = DefaultIncludes()
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Collect returns the files under root matching the include patterns. Without
// recursive only the files directly in root are considered. Paths keep the
// form of root (relative roots give relative paths).
func (w *Walker) Collect(root string, recursive bool) ([]string, error) {
	if root == "" {
		root = "."
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath == "." {
				return nil
			}
			if !recursive || w.shouldExclude(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}
