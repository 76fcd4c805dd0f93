// Package statusfile reads the per-branch user status sidecar. Statuses are
// free-form short strings (often a single emoji) that end up as the suffix
// of the status grid.
package statusfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the sidecar location relative to the repository root.
const Path = ".treeline/status.yaml"

// Load reads branch→status mappings from the repository's sidecar file.
// A missing file is not an error: no statuses.
func Load(repoRoot string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(repoRoot, Path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", Path, err)
	}

	var statuses map[string]string
	if err := yaml.Unmarshal(data, &statuses); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", Path, err)
	}
	return statuses, nil
}

// Save writes the mappings back, creating the sidecar directory if needed.
// An empty map removes the file.
func Save(repoRoot string, statuses map[string]string) error {
	path := filepath.Join(repoRoot, Path)
	if len(statuses) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", Path, err)
		}
		return nil
	}

	data, err := yaml.Marshal(statuses)
	if err != nil {
		return fmt.Errorf("encoding statuses: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(Path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", Path, err)
	}
	return nil
}
