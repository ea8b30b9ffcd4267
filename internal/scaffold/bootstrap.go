// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/anyproject/anyproj/internal/config"
	"github.com/anyproject/anyproj/internal/workspace"
)

// Bootstrap brings the workspace structure up to date: required
// directories and seed files are created when missing, config.json gains
// any absent default keys, and a legacy instructions.md is renamed to
// rules.md. Safe to run any number of times.
func Bootstrap(ws workspace.Workspace, logger *log.Logger) (*Report, error) {
	report := &Report{}

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
			logger.Debug("directory exists", "path", path)
		}
	}

	// Migrate before seeding files, otherwise the rules.md seed would
	// shadow a legacy instructions.md.
	if migrated, err := migrateLegacyRules(ws); err != nil {
		return nil, err
	} else if migrated {
		report.migrated(ws.RulesFile())
		logger.Info("migrated instructions.md to rules.md")
	}

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
			logger.Debug("file exists", "path", path)
		}
	}

	if err := MergeJSONDefaults(ws.ConfigFile(), config.DefaultFileContent()); err != nil {
		return nil, err
	}
	logger.Debug("merged config defaults", "path", ws.ConfigFile())

	return report, nil
}

// migrateLegacyRules renames instructions.md to rules.md when only the
// former exists.
func migrateLegacyRules(ws workspace.Workspace) (bool, error) {
	if _, err := os.Stat(ws.LegacyRulesFile()); err != nil {
		return false, nil
	}
	if _, err := os.Stat(ws.RulesFile()); err == nil {
		return false, nil
	}
	if err := os.Rename(ws.LegacyRulesFile(), ws.RulesFile()); err != nil {
		return false, err
	}
	return true, nil
}
