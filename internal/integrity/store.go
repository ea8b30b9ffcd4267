// SPDX-License-Identifier: MPL-2.0

package integrity

import (
	"github.com/anyproject/anyproj/internal/workspace"
)

// LoadManifest reads the recorded manifest from path.
func LoadManifest(path string) (Manifest, error) {
	m := Manifest{}
	if err := workspace.ReadJSONFile(path, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// SaveManifest writes the manifest to path as indented JSON.
func SaveManifest(path string, m Manifest) error {
	return workspace.WriteJSONFile(path, m)
}
