// SPDX-License-Identifier: MPL-2.0

// Package release packages the workspace into a versioned zip archive
// under dist/.
package release

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anyproject/anyproj/internal/workspace"
)

// Directory and file names excluded from archives.
var (
	excludeDirs  = map[string]bool{".git": true, "venv": true, ".venv": true, ".pytest_cache": true, "__pycache__": true, "dist": true}
	excludeFiles = map[string]bool{workspace.ManifestName: true, ".DS_Store": true}
)

// Archive zips the workspace into dist/<project>-v<version>-<timestamp>.zip
// and returns the archive path. dist/ is created when missing.
func Archive(ws workspace.Workspace, project, version string, now time.Time) (string, error) {
	if err := os.MkdirAll(ws.DistDir(), 0o755); err != nil {
		return "", fmt.Errorf("creating dist dir: %w", err)
	}

	name := fmt.Sprintf("%s-v%s-%s.zip", project, version, now.Format("20060102-150405"))
	path := filepath.Join(ws.DistDir(), name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating archive: %w", err)
	}
	defer func() { _ = out.Close() }()

	zw := zip.NewWriter(out)
	err = filepath.WalkDir(ws.Root(), func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != ws.Root() && excludeDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if excludeFiles[d.Name()] {
			return nil
		}

		rel, err := filepath.Rel(ws.Root(), p)
		if err != nil {
			return err
		}
		return addFile(zw, p, filepath.ToSlash(rel))
	})
	if err != nil {
		_ = zw.Close()
		return "", fmt.Errorf("archiving workspace: %w", err)
	}

	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finalizing archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing archive: %w", err)
	}
	return path, nil
}

func addFile(zw *zip.Writer, path, rel string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	// Deflate with the relative path preserved; timestamps are not
	// recorded so archives of identical trees compare equal.
	w, err := zw.Create(rel)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// DefaultProjectName normalizes a project name for use in archive file
// names, replacing path-hostile characters.
func DefaultProjectName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "anyproject"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ':
			return '-'
		}
		return r
	}, name)
}
