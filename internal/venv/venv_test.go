// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEnvExists(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), ".venv")
	env := New(dir)

	if env.Exists() {
		t.Error("Exists() = true before creation")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if !env.Exists() {
		t.Error("Exists() = false after creation")
	}
}

func TestEnvLayout(t *testing.T) {
	t.Parallel()

	env := New(filepath.Join("work", ".venv"))

	wantBin := filepath.Join("work", ".venv", "bin")
	wantPython := filepath.Join(wantBin, "python")
	if runtime.GOOS == "windows" {
		wantBin = filepath.Join("work", ".venv", "Scripts")
		wantPython = filepath.Join(wantBin, "python.exe")
	}

	if got := env.BinDir(); got != wantBin {
		t.Errorf("BinDir() = %q, want %q", got, wantBin)
	}
	if got := env.Python(); got != wantPython {
		t.Errorf("Python() = %q, want %q", got, wantPython)
	}
}

func TestEnvUsable(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), ".venv")
	env := New(dir)

	if env.Usable() {
		t.Error("Usable() = true for missing environment")
	}

	// A bare directory exists but carries no interpreter.
	if err := os.MkdirAll(env.BinDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if env.Usable() {
		t.Error("Usable() = true without interpreter")
	}

	if err := os.WriteFile(env.Python(), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if !env.Usable() {
		t.Error("Usable() = false with interpreter present")
	}
}
