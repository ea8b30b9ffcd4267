// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"encoding/json"
	"os"
	"strings"
)

// Markers that flag a seed file as an unedited template.
var placeholderMarkers = []string{"todo", "example", "describe", "placeholder"}

// IsPlaceholderJSON reports whether the features file at path is missing,
// empty, unparseable, or still a template (marker words present, or no
// meaningful name/feature keys).
func IsPlaceholderJSON(path string) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		return true
	}
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "{}" {
		return true
	}
	lower := strings.ToLower(text)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	obj := map[string]any{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return true
	}
	if isEmptyValue(obj["features"]) && obj["project_name"] == nil && obj["name"] == nil {
		return true
	}
	return false
}

// IsPlaceholderMD reports whether the markdown file at path is missing,
// empty, or still the seeded stub.
func IsPlaceholderMD(path string) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		return true
	}
	text := strings.ToLower(strings.TrimSpace(string(raw)))
	if text == "" || strings.HasPrefix(text, "# research guidelines") {
		return true
	}
	for _, marker := range []string{"todo", "example", "describe"} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
