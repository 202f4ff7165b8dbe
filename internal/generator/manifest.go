package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file listing every generated path, written at the
// output root.
const ManifestName = "manifest.yaml"

// Manifest records what a run produced. It holds nothing run-specific so an
// unchanged schema yields a byte-identical manifest.
type Manifest struct {
	// Generator is always "zcl-gen".
	Generator string `yaml:"generator"`
	// Language is the renderer used.
	Language string `yaml:"language"`
	// Files are output paths relative to the manifest, sorted.
	Files []string `yaml:"files"`
}

// NewManifest builds a manifest from the paths written by a run.
func NewManifest(language string, paths []string) *Manifest {
	files := append([]string(nil), paths...)
	sort.Strings(files)
	return &Manifest{Generator: "zcl-gen", Language: language, Files: files}
}

// Encode renders the manifest as YAML.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}

// ReadManifest loads the manifest stored in dir. A missing manifest is not an
// error; it returns nil.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
