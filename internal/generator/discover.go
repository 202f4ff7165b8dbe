package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude matches every XML file below the schema directory.
var DefaultInclude = []string{"**/*.xml"}

// Discover returns the schema files below root matching any include pattern
// and no exclude pattern. Patterns use doublestar syntax relative to root.
// The result is sorted and free of duplicates.
func Discover(root string, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}
	for _, p := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q", p)
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("schema directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("schema directory %s is not a directory", root)
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || excluded(m, exclude) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}

	sort.Strings(files)
	for i, f := range files {
		files[i] = filepath.Join(root, filepath.FromSlash(f))
	}
	return files, nil
}

func excluded(path string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}
