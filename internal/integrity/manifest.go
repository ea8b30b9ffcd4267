// SPDX-License-Identifier: MPL-2.0

// Package integrity maintains a SHA-256 manifest of workspace files and
// reports drift against it.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Manifest maps workspace-relative paths (slash-separated) to SHA-256 hex digests.
type Manifest map[string]string

// Diff is the drift between two manifests.
type Diff struct {
	Changed []string
	Missing []string
	Added   []string
}

// Clean reports whether no drift was found.
func (d Diff) Clean() bool {
	return len(d.Changed) == 0 && len(d.Missing) == 0 && len(d.Added) == 0
}

// Directories and suffixes excluded from manifests.
var (
	skipDirs     = map[string]bool{".git": true, "venv": true, ".venv": true, "__pycache__": true, ".pytest_cache": true, "dist": true}
	skipSuffixes = []string{".pyc", ".log"}
)

// HashFile computes the SHA-256 hex digest of a file's contents.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }() // Read-only file; close error non-critical

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Build walks root and hashes every file not excluded. manifestName is
// skipped so the manifest never tracks itself.
func Build(root, manifestName string) (Manifest, error) {
	m := Manifest{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if name == manifestName {
			return nil
		}
		for _, suffix := range skipSuffixes {
			if strings.HasSuffix(name, suffix) {
				return nil
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		digest, err := HashFile(path)
		if err != nil {
			return fmt.Errorf("hashing %s: %w", rel, err)
		}
		m[filepath.ToSlash(rel)] = digest
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Compare reports drift of the current manifest relative to the recorded one.
func Compare(recorded, current Manifest) Diff {
	diff := Diff{}

	for path, digest := range recorded {
		cur, ok := current[path]
		switch {
		case !ok:
			diff.Missing = append(diff.Missing, path)
		case cur != digest:
			diff.Changed = append(diff.Changed, path)
		}
	}
	for _, path := range maps.Keys(current) {
		if _, ok := recorded[path]; !ok {
			diff.Added = append(diff.Added, path)
		}
	}

	slices.Sort(diff.Changed)
	slices.Sort(diff.Missing)
	slices.Sort(diff.Added)
	return diff
}
