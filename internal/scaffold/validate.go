// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"github.com/charmbracelet/log"

	"github.com/anyproject/anyproj/internal/workspace"
)

// Validate checks the workspace structure, creating anything missing with
// the same templates bootstrap uses, dropping .gitkeep into empty
// required directories, and making sure .gitignore covers virtual
// environments and caches.
func Validate(ws workspace.Workspace, logger *log.Logger) (*Report, error) {
	report := &Report{}

	for name, content := range RequiredFiles() {
		path := ws.Join(name)
		created, err := EnsureFile(path, content)
		if err != nil {
			return nil, err
		}
		if created {
			report.created(path)
			logger.Info("created file", "path", path)
		} else {
			report.existing(path)
		}
	}

	for _, dir := range RequiredDirs {
		path := ws.Join(dir)
		created, err := EnsureDir(path)
		if err != nil {
			return nil, err
		}
		if created {
			report.created(path)
			logger.Info("created directory", "path", path)
		} else {
			report.existing(path)
		}
		if err := EnsureGitkeep(path); err != nil {
			return nil, err
		}
	}

	updated, err := EnsureGitignore(ws.GitignoreFile(), GitignorePatterns)
	if err != nil {
		return nil, err
	}
	if updated {
		report.created(ws.GitignoreFile())
		logger.Info("updated .gitignore")
	}

	return report, nil
}
