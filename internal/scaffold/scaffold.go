// SPDX-License-Identifier: MPL-2.0

// Package scaffold creates and repairs the workspace structure. Every
// operation is idempotent and non-destructive: directories and files are
// created only when missing, and JSON defaults merge under existing keys
// so user edits always win.
package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Report lists what a scaffold pass touched.
type Report struct {
	Created  []string
	Existing []string
	Migrated []string
}

func (r *Report) created(path string)  { r.Created = append(r.Created, path) }
func (r *Report) existing(path string) { r.Existing = append(r.Existing, path) }
func (r *Report) migrated(path string) { r.Migrated = append(r.Migrated, path) }

// EnsureDir creates the directory (and parents) when missing.
func EnsureDir(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", path, err)
	}
	return true, nil
}

// EnsureFile creates the file with content when missing. Existing files
// are never touched.
func EnsureFile(path, content string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("creating file %s: %w", path, err)
	}
	return true, nil
}

// EnsureGitkeep drops a .gitkeep into an empty directory so it survives
// in version control.
func EnsureGitkeep(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return nil
	}
	return os.WriteFile(filepath.Join(dir, ".gitkeep"), nil, 0o644)
}

// MergeJSONDefaults writes defaults into the JSON file at path. Keys
// already present keep their current values; an unparseable file is
// treated as empty. A missing file is created from the defaults alone.
func MergeJSONDefaults(path string, defaults map[string]any) error {
	existing := map[string]any{}
	if raw, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(raw, &existing)
	}

	merged := map[string]any{}
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range existing {
		merged[k] = v
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// EnsureGitignore appends any of the given patterns missing from the
// .gitignore at path, creating the file when absent. Existing lines and
// their order are preserved.
func EnsureGitignore(path string, patterns []string) (updated bool, err error) {
	var lines []string
	if raw, readErr := os.ReadFile(path); readErr == nil {
		lines = strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	}

	present := map[string]bool{}
	for _, l := range lines {
		present[strings.TrimSpace(l)] = true
	}

	for _, p := range patterns {
		if !present[p] {
			lines = append(lines, p)
			updated = true
		}
	}

	if !updated {
		return false, nil
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
