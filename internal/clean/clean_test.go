// SPDX-License-Identifier: MPL-2.0

package clean

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/anyproject/anyproj/internal/workspace"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testWorkspace(t *testing.T) workspace.Workspace {
	t.Helper()
	ws, err := workspace.At(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return ws
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestCleanRemovesCaches(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	touch(t, ws.Join("__pycache__", "mod.cpython-312.pyc"))
	touch(t, ws.Join("tools", "__pycache__", "helper.pyc"))
	touch(t, ws.Join(".pytest_cache", "v", "cache", "lastfailed"))
	touch(t, ws.Join("debug", "session.log"))
	touch(t, ws.Join("memory", "plan.json"))
	touch(t, ws.Join("rules.md"))

	removed, err := Clean(ws, Options{}, testLogger())
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	for _, gone := range []string{
		ws.Join("__pycache__"),
		ws.Join("tools", "__pycache__"),
		ws.Join(".pytest_cache"),
		ws.Join("debug", "session.log"),
	} {
		if exists(gone) {
			t.Errorf("%s still exists", gone)
		}
		if !slices.Contains(removed, gone) {
			t.Errorf("%s not reported as removed", gone)
		}
	}
	for _, kept := range []string{ws.Join("memory", "plan.json"), ws.Join("rules.md")} {
		if !exists(kept) {
			t.Errorf("%s was removed", kept)
		}
	}
}

func TestCleanPreservesVenvByDefault(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	touch(t, filepath.Join(ws.VenvDir(), "bin", "python"))
	touch(t, filepath.Join(ws.VenvDir(), "lib", "junk.pyc"))

	if _, err := Clean(ws, Options{}, testLogger()); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	// Nothing inside the environment is touched, not even cache suffixes.
	if !exists(filepath.Join(ws.VenvDir(), "lib", "junk.pyc")) {
		t.Error("clean descended into the environment directory")
	}

	if _, err := Clean(ws, Options{Venv: true}, testLogger()); err != nil {
		t.Fatalf("Clean(Venv) error = %v", err)
	}
	if exists(ws.VenvDir()) {
		t.Error("environment directory survived Options.Venv")
	}
}

func TestCleanSkipsGitDir(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	touch(t, ws.Join(".git", "logs", "HEAD.log"))

	if _, err := Clean(ws, Options{}, testLogger()); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if !exists(ws.Join(".git", "logs", "HEAD.log")) {
		t.Error("clean descended into .git")
	}
}

func TestCleanMergesGitignore(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	touch(t, ws.GitignoreFile())
	if err := os.WriteFile(ws.GitignoreFile(), []byte("custom/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Clean(ws, Options{}, testLogger()); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	data, err := os.ReadFile(ws.GitignoreFile())
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "custom/\n") {
		t.Errorf("existing patterns not preserved:\n%s", got)
	}
	if !strings.Contains(got, "__pycache__/") {
		t.Errorf("standard patterns not merged:\n%s", got)
	}
}
