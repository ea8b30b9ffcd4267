// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsPlaceholderJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"empty object", "{}", true},
		{"blank", "   ", true},
		{"unparseable", "{nope", true},
		{"todo marker", `{"project_name": "App", "features": ["TODO: later"]}`, true},
		{"no meaningful keys", `{"features": [], "platform": "android"}`, true},
		{"real content", `{"project_name": "Tracker", "features": [{"id": "f1", "title": "Login"}]}`, false},
		{"named with feature map", `{"name": "Tracker", "features": {"login": {}}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeTemp(t, "features.json", tt.content)
			if got := IsPlaceholderJSON(path); got != tt.want {
				t.Errorf("IsPlaceholderJSON(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsPlaceholderJSONMissingFile(t *testing.T) {
	t.Parallel()

	if !IsPlaceholderJSON(filepath.Join(t.TempDir(), "absent.json")) {
		t.Error("IsPlaceholderJSON(missing) = false, want true")
	}
}

func TestIsPlaceholderMD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"seed stub", "# Research Guidelines\n\nPaste your research notes here.\n", true},
		{"blank", "\n\n", true},
		{"real notes", "# Findings\n\nThe API rate limit is 60/min.\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeTemp(t, "research.md", tt.content)
			if got := IsPlaceholderMD(path); got != tt.want {
				t.Errorf("IsPlaceholderMD(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSeedFeaturesIsDetectedAsPlaceholder(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "features.json", RequiredFiles()["PROGRAM_FEATURES.json"])
	if !IsPlaceholderJSON(path) {
		t.Error("seeded features file must be detected as placeholder")
	}
}
