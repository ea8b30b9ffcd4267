// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MergeState merge-writes keys into <root>/memory/state.json. Incoming
// keys win over existing ones; keys absent from the update are preserved.
// The memory directory is created if needed.
func (w Workspace) MergeState(update map[string]any) error {
	if err := os.MkdirAll(w.MemoryDir(), 0o755); err != nil {
		return fmt.Errorf("creating memory dir: %w", err)
	}

	merged := map[string]any{}
	if raw, err := os.ReadFile(w.StateFile()); err == nil {
		// Unparseable state is discarded rather than blocking the write.
		_ = json.Unmarshal(raw, &merged)
	}
	for k, v := range update {
		merged[k] = v
	}

	return WriteJSONFile(w.StateFile(), merged)
}

// ReadState returns the contents of memory/state.json, or an empty map
// when the file is missing or unparseable.
func (w Workspace) ReadState() map[string]any {
	state := map[string]any{}
	raw, err := os.ReadFile(w.StateFile())
	if err != nil {
		return state
	}
	_ = json.Unmarshal(raw, &state)
	return state
}

// WriteJSONFile writes v as indented JSON with a trailing newline.
func WriteJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ReadJSONFile decodes the JSON file at path into v.
func ReadJSONFile(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
