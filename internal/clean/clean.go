// SPDX-License-Identifier: MPL-2.0

// Package clean removes caches and generated debris from the workspace.
package clean

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/anyproject/anyproj/internal/scaffold"
	"github.com/anyproject/anyproj/internal/workspace"
)

// Options controls what Clean removes.
type Options struct {
	// Venv also removes the provisioned environment directory. Off by
	// default: the environment is never implicitly deleted.
	Venv bool
}

// Cache directories and file suffixes removed by Clean.
var (
	cacheDirs     = map[string]bool{"__pycache__": true, ".pytest_cache": true, "tmp": true}
	cacheSuffixes = []string{".pyc", ".log"}
)

// Clean removes cache directories and generated files under the workspace
// and merges the standard ignore patterns into .gitignore. Returns the
// paths removed.
func Clean(ws workspace.Workspace, opts Options, logger *log.Logger) ([]string, error) {
	var removed []string

	err := filepath.WalkDir(ws.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A path may vanish while walking (we delete as we go).
			return nil
		}
		if path == ws.Root() {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == workspace.VenvDirName {
				return filepath.SkipDir
			}
			if cacheDirs[d.Name()] {
				if err := os.RemoveAll(path); err != nil {
					return err
				}
				logger.Info("removed", "path", path)
				removed = append(removed, path)
				return filepath.SkipDir
			}
			return nil
		}
		for _, suffix := range cacheSuffixes {
			if strings.HasSuffix(d.Name(), suffix) {
				if err := os.Remove(path); err != nil {
					return err
				}
				logger.Info("removed", "path", path)
				removed = append(removed, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return removed, err
	}

	if opts.Venv {
		if err := os.RemoveAll(ws.VenvDir()); err != nil {
			return removed, err
		}
		logger.Info("removed", "path", ws.VenvDir())
		removed = append(removed, ws.VenvDir())
	}

	if _, err := scaffold.EnsureGitignore(ws.GitignoreFile(), scaffold.GitignorePatterns); err != nil {
		return removed, err
	}

	return removed, nil
}
