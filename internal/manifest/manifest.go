// Package manifest records the files written by a render run. The manifest
// persists inside the content directory between runs and drives cleanup of
// stale output.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// FileName is the manifest's location inside the content directory.
const FileName = ".nuxtdoc-files.json"

// Manifest lists every output path (relative to the content directory)
// produced by one render run.
type Manifest struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Files       []string  `json:"files"`
}

// New creates an empty manifest for a run.
func New(runID string, now time.Time) *Manifest {
	return &Manifest{RunID: runID, GeneratedAt: now.UTC(), Files: []string{}}
}

// Append records a written file path.
func (m *Manifest) Append(relPath string) {
	m.Files = append(m.Files, filepath.ToSlash(relPath))
}

// Contains reports whether relPath was already recorded this run.
func (m *Manifest) Contains(relPath string) bool {
	rel := filepath.ToSlash(relPath)
	for _, f := range m.Files {
		if f == rel {
			return true
		}
	}
	return false
}

// Load reads the previous run's manifest from the content directory. A
// missing manifest is not an error; it loads as an empty prior run.
func Load(contentDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(contentDir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{Files: []string{}}, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if m.Files == nil {
		m.Files = []string{}
	}
	return &m, nil
}

// Save persists the manifest into the content directory, replacing the
// previous run's record. Files are sorted for stable output.
func (m *Manifest) Save(contentDir string) error {
	sort.Strings(m.Files)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filepath.Join(contentDir, FileName), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Clean removes every file recorded in the manifest from the content
// directory. Already-missing files are a no-op, not an error. Returns the
// number of files actually removed.
func (m *Manifest) Clean(contentDir string) (int, error) {
	removed := 0
	for _, rel := range m.Files {
		target := filepath.Join(contentDir, filepath.FromSlash(rel))
		err := os.Remove(target)
		switch {
		case err == nil:
			removed++
		case os.IsNotExist(err):
			// Someone already deleted it; nothing to do.
		default:
			return removed, fmt.Errorf("remove %s: %w", target, err)
		}
	}
	return removed, nil
}
