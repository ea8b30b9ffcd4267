// SPDX-License-Identifier: MPL-2.0

package release

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/anyproject/anyproj/internal/workspace"
)

var testNow = time.Date(2025, 9, 25, 7, 23, 18, 0, time.UTC)

func testWorkspace(t *testing.T) workspace.Workspace {
	t.Helper()
	ws, err := workspace.At(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return ws
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func archiveNames(t *testing.T, path string) []string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer func() { _ = zr.Close() }()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func TestArchiveIncludesTrackedFiles(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	write(t, ws.ConfigFile(), `{"project": "demo"}`)
	write(t, ws.Join("rules.md"), "# Rules\n")
	write(t, ws.Join("tools", "helper.py"), "print('hi')\n")
	write(t, ws.Join(".venv", "bin", "python"), "")
	write(t, ws.Join("__pycache__", "mod.pyc"), "")
	write(t, ws.ManifestFile(), "{}")

	path, err := Archive(ws, "demo", "0.1.0", testNow)
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	if got := filepath.Base(path); got != "demo-v0.1.0-20250925-072318.zip" {
		t.Errorf("archive name = %q", got)
	}

	got := archiveNames(t, path)
	want := []string{"config.json", "rules.md", "tools/helper.py"}
	if len(got) != len(want) {
		t.Fatalf("archive entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestArchiveExcludesDist(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	write(t, ws.Join("rules.md"), "# Rules\n")

	// A second run must not swallow the first archive.
	if _, err := Archive(ws, "demo", "0.1.0", testNow); err != nil {
		t.Fatal(err)
	}
	path, err := Archive(ws, "demo", "0.1.0", testNow.Add(time.Second))
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}

	for _, name := range archiveNames(t, path) {
		if filepath.Dir(name) == "dist" {
			t.Errorf("archive contains dist entry %q", name)
		}
	}
}

func TestDefaultProjectName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", "anyproject"},
		{"  ", "anyproject"},
		{"My App", "My-App"},
		{"a/b\\c", "a-b-c"},
		{"demo", "demo"},
	}
	for _, tt := range tests {
		if got := DefaultProjectName(tt.in); got != tt.want {
			t.Errorf("DefaultProjectName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
