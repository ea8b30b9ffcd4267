// SPDX-License-Identifier: MPL-2.0

package integrity

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildSkipsExcluded(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "rules.md", "rules")
	writeFile(t, root, "tools/helper.py", "code")
	writeFile(t, root, ".venv/bin/python", "binary")
	writeFile(t, root, "__pycache__/mod.pyc", "cache")
	writeFile(t, root, "debug/run.log", "log")
	writeFile(t, root, "file_manifest.json", "{}")

	m, err := Build(root, "file_manifest.json")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []string{"rules.md", "tools/helper.py"}
	if len(m) != len(want) {
		t.Errorf("Build() tracked %d files, want %d: %v", len(m), len(want), m)
	}
	for _, rel := range want {
		if _, ok := m[rel]; !ok {
			t.Errorf("Build() missing %s", rel)
		}
	}
	for _, rel := range []string{".venv/bin/python", "__pycache__/mod.pyc", "debug/run.log", "file_manifest.json"} {
		if _, ok := m[rel]; ok {
			t.Errorf("Build() tracked excluded file %s", rel)
		}
	}
}

func TestCompareDetectsDrift(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "stable.md", "same")
	writeFile(t, root, "edited.md", "before")
	writeFile(t, root, "removed.md", "gone")

	recorded, err := Build(root, "file_manifest.json")
	if err != nil {
		t.Fatal(err)
	}

	writeFile(t, root, "edited.md", "after")
	if err := os.Remove(filepath.Join(root, "removed.md")); err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "added.md", "new")

	current, err := Build(root, "file_manifest.json")
	if err != nil {
		t.Fatal(err)
	}

	diff := Compare(recorded, current)
	if diff.Clean() {
		t.Fatal("Compare() reported clean despite drift")
	}
	if len(diff.Changed) != 1 || diff.Changed[0] != "edited.md" {
		t.Errorf("Changed = %v, want [edited.md]", diff.Changed)
	}
	if len(diff.Missing) != 1 || diff.Missing[0] != "removed.md" {
		t.Errorf("Missing = %v, want [removed.md]", diff.Missing)
	}
	if len(diff.Added) != 1 || diff.Added[0] != "added.md" {
		t.Errorf("Added = %v, want [added.md]", diff.Added)
	}
}

func TestCompareCleanRoundTrip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.md", "a")
	writeFile(t, root, "b/c.md", "c")

	m, err := Build(root, "file_manifest.json")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(root, "file_manifest.json")
	if err := SaveManifest(path, m); err != nil {
		t.Fatalf("SaveManifest() error = %v", err)
	}
	loaded, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}

	// The manifest itself is excluded, so a fresh build still matches.
	current, err := Build(root, "file_manifest.json")
	if err != nil {
		t.Fatal(err)
	}
	if diff := Compare(loaded, current); !diff.Clean() {
		t.Errorf("Compare() after round trip = %+v, want clean", diff)
	}
}
