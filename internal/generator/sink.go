package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Sink receives generated files. Paths are slash-separated and relative to
// the sink's root. Implementations must be safe for concurrent use.
type Sink interface {
	Write(path string, data []byte) error
}

// DirSink writes files below Root, creating directories as needed.
type DirSink struct {
	Root string
}

func (s DirSink) Write(path string, data []byte) error {
	dest := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

// MemorySink keeps generated files in memory. Check mode renders into one
// before comparing against disk.
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

func (s *MemorySink) Write(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = append([]byte(nil), data...)
	return nil
}

// Get returns the content written to path.
func (s *MemorySink) Get(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	return data, ok
}

// Paths returns every written path in sorted order.
func (s *MemorySink) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
