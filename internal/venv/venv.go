// SPDX-License-Identifier: MPL-2.0

// Package venv provisions and describes the workspace's isolated Python
// environment. Provisioning is idempotent: the environment directory is
// created only when absent, while the installer upgrade and test-tooling
// install always re-run so repeat invocations converge on a current
// environment without ever recreating it.
package venv

import (
	"os"
	"path/filepath"
	"runtime"
)

// Env describes an environment rooted at Dir. The directory may or may
// not exist; Exists distinguishes.
type Env struct {
	Dir string
}

// New returns an Env for the environment directory.
func New(dir string) Env {
	return Env{Dir: dir}
}

// Exists reports whether the environment directory exists. Existence
// alone gates re-creation; a partially initialized directory from an
// earlier failed run still counts and is tolerated.
func (e Env) Exists() bool {
	info, err := os.Stat(e.Dir)
	return err == nil && info.IsDir()
}

// BinDir returns the environment's executable directory
// (bin on Unix, Scripts on Windows).
func (e Env) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Dir, "Scripts")
	}
	return filepath.Join(e.Dir, "bin")
}

// Python returns the path of the environment's interpreter.
func (e Env) Python() string {
	return filepath.Join(e.BinDir(), exeName("python"))
}

// Pip returns the path of the environment's package installer.
func (e Env) Pip() string {
	return filepath.Join(e.BinDir(), exeName("pip"))
}

// Usable reports whether the environment contains a runnable interpreter,
// a stronger check than Exists used by doctor.
func (e Env) Usable() bool {
	info, err := os.Stat(e.Python())
	return err == nil && info.Mode().IsRegular()
}

func exeName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}
