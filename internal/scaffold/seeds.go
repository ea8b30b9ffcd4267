// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"encoding/json"

	"github.com/anyproject/anyproj/internal/workspace"
)

// Directories every workspace carries (workspace-relative).
var RequiredDirs = []string{
	"planning",
	"memory",
	"memory/batches",
	"debug",
	"automation",
	"tools",
}

// GitignorePatterns are merged into .gitignore by validate and clean.
var GitignorePatterns = []string{
	"venv/",
	".venv/",
	".pytest_cache/",
	"tmp/",
	"*.log",
	"*.pyc",
	"__pycache__/",
	"dist/",
}

// seedFeatures is the PROGRAM_FEATURES.json template. It is deliberately
// a recognizable placeholder so init can refuse to seed planning data
// before it has been edited.
func seedFeatures() string {
	data, _ := json.MarshalIndent(map[string]any{
		"project_name": "MyNewApp",
		"version":      "0.1.0",
		"features":     []any{"TODO: describe your first feature"},
	}, "", "  ")
	return string(data) + "\n"
}

// RequiredFiles maps workspace-relative file names to their seed content.
func RequiredFiles() map[string]string {
	return map[string]string{
		workspace.FeaturesName: seedFeatures(),
		workspace.ResearchName: "# Research Guidelines\n\nPaste your research notes here.\n",
		workspace.RulesName:    "# Rules\n\nProject rules and constraints.\n",
		"requirements.txt":     "# Add project dependencies here\n",
	}
}
