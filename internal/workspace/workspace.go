// SPDX-License-Identifier: MPL-2.0

// Package workspace locates the project workspace root and derives the
// fixed paths that every anyproj command operates on. All path computation
// is anchored at the discovered root, never at the caller's working
// directory, so commands behave identically regardless of where inside the
// workspace they are invoked.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Marker files/directories that identify a workspace root, checked in order.
var rootMarkers = []string{"config.json", ".git", ".venv"}

// Well-known names inside a workspace.
const (
	VenvDirName     = ".venv"
	ConfigFileName  = "config.json"
	MemoryDirName   = "memory"
	BatchesDirName  = "batches"
	DistDirName     = "dist"
	ManifestName    = "file_manifest.json"
	FeaturesName    = "PROGRAM_FEATURES.json"
	ResearchName    = "RESEARCH_GUIDELINES.md"
	RulesName       = "rules.md"
	LegacyRulesName = "instructions.md"
)

// Workspace is a resolved project root. The zero value is not usable;
// construct via Discover or At.
type Workspace struct {
	root string

	// venvDirName overrides VenvDirName when set (config venv.dir).
	venvDirName string
}

// At returns a Workspace anchored at the given directory without any
// marker discovery. Used by the --root flag and by tests.
func At(dir string) (Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Workspace{}, fmt.Errorf("resolving workspace root: %w", err)
	}
	return Workspace{root: abs}, nil
}

// Discover walks upward from startDir looking for a workspace marker
// (config.json, .git, or an existing .venv). When no marker is found the
// start directory itself becomes the root; bootstrap and setup create the
// markers on first use.
func Discover(startDir string) (Workspace, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return Workspace{}, fmt.Errorf("resolving workspace root: %w", err)
	}

	dir := abs
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return Workspace{root: dir}, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return Workspace{root: abs}, nil
}

// Root returns the absolute workspace root directory.
func (w Workspace) Root() string { return w.root }

// WithVenvDirName returns a copy of the workspace using name as the
// environment directory instead of the default .venv.
func (w Workspace) WithVenvDirName(name string) Workspace {
	w.venvDirName = name
	return w
}

// VenvDir returns the provisioned environment directory, <root>/.venv by
// default.
func (w Workspace) VenvDir() string {
	name := w.venvDirName
	if name == "" {
		name = VenvDirName
	}
	return filepath.Join(w.root, name)
}

// ConfigFile returns <root>/config.json.
func (w Workspace) ConfigFile() string { return filepath.Join(w.root, ConfigFileName) }

// MemoryDir returns <root>/memory.
func (w Workspace) MemoryDir() string { return filepath.Join(w.root, MemoryDirName) }

// BatchesDir returns <root>/memory/batches.
func (w Workspace) BatchesDir() string { return filepath.Join(w.MemoryDir(), BatchesDirName) }

// PlanFile returns <root>/memory/plan.json.
func (w Workspace) PlanFile() string { return filepath.Join(w.MemoryDir(), "plan.json") }

// TodoFile returns <root>/memory/todo.json.
func (w Workspace) TodoFile() string { return filepath.Join(w.MemoryDir(), "todo.json") }

// StateFile returns <root>/memory/state.json.
func (w Workspace) StateFile() string { return filepath.Join(w.MemoryDir(), "state.json") }

// FeaturesFile returns <root>/PROGRAM_FEATURES.json.
func (w Workspace) FeaturesFile() string { return filepath.Join(w.root, FeaturesName) }

// ResearchFile returns <root>/RESEARCH_GUIDELINES.md.
func (w Workspace) ResearchFile() string { return filepath.Join(w.root, ResearchName) }

// RulesFile returns <root>/rules.md.
func (w Workspace) RulesFile() string { return filepath.Join(w.root, RulesName) }

// LegacyRulesFile returns <root>/instructions.md, the pre-rename rules file.
func (w Workspace) LegacyRulesFile() string { return filepath.Join(w.root, LegacyRulesName) }

// DistDir returns <root>/dist.
func (w Workspace) DistDir() string { return filepath.Join(w.root, DistDirName) }

// ManifestFile returns <root>/file_manifest.json.
func (w Workspace) ManifestFile() string { return filepath.Join(w.root, ManifestName) }

// GitignoreFile returns <root>/.gitignore.
func (w Workspace) GitignoreFile() string { return filepath.Join(w.root, ".gitignore") }

// Join resolves a workspace-relative path.
func (w Workspace) Join(elem ...string) string {
	return filepath.Join(append([]string{w.root}, elem...)...)
}

// Provisioned reports whether the environment directory exists. Existence
// alone gates re-creation; a partially initialized directory still counts
// as provisioned and must be tolerated by callers.
func (w Workspace) Provisioned() bool {
	info, err := os.Stat(w.VenvDir())
	return err == nil && info.IsDir()
}
