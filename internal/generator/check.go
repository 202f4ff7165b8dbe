package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// DriftKind classifies a difference between generated and committed output.
type DriftKind string

const (
	// DriftMissing means the file would be generated but does not exist.
	DriftMissing DriftKind = "missing"
	// DriftChanged means the committed file differs from the generated one.
	DriftChanged DriftKind = "changed"
	// DriftStale means the committed manifest lists a file that is no longer
	// generated.
	DriftStale DriftKind = "stale"
)

// Drift is one out-of-date output file.
type Drift struct {
	Path string
	Kind DriftKind
	// Diff is a unified diff from the committed to the generated content,
	// set for DriftChanged only.
	Diff string
}

// Check compares the files in generated against the tree at dir. Results are
// sorted by path.
func Check(dir string, generated *MemorySink) ([]Drift, error) {
	var drifts []Drift
	wanted := make(map[string]bool)

	for _, p := range generated.Paths() {
		wanted[p] = true
		want, _ := generated.Get(p)

		have, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p)))
		if err != nil {
			if os.IsNotExist(err) {
				drifts = append(drifts, Drift{Path: p, Kind: DriftMissing})
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if bytes.Equal(have, want) {
			continue
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(have)),
			B:        difflib.SplitLines(string(want)),
			FromFile: "a/" + p,
			ToFile:   "b/" + p,
			Context:  3,
		})
		if err != nil {
			return nil, fmt.Errorf("diffing %s: %w", p, err)
		}
		drifts = append(drifts, Drift{Path: p, Kind: DriftChanged, Diff: diff})
	}

	committed, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	if committed != nil {
		for _, p := range committed.Files {
			if !wanted[p] {
				drifts = append(drifts, Drift{Path: p, Kind: DriftStale})
			}
		}
	}

	sort.SliceStable(drifts, func(i, j int) bool { return drifts[i].Path < drifts[j].Path })
	return drifts, nil
}
