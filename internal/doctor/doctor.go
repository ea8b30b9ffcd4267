// SPDX-License-Identifier: MPL-2.0

// Package doctor runs workspace health checks and reports findings.
package doctor

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/anyproject/anyproj/internal/config"
	"github.com/anyproject/anyproj/internal/scaffold"
	"github.com/anyproject/anyproj/internal/venv"
	"github.com/anyproject/anyproj/internal/workspace"
)

// Finding is one detected problem with a remediation hint.
type Finding struct {
	Summary string
	Hint    string
}

// Check runs every health check against the workspace and returns the
// findings. An empty slice means all checks passed.
func Check(ws workspace.Workspace, logger *log.Logger) []Finding {
	var findings []Finding

	env := venv.New(ws.VenvDir())
	switch {
	case !env.Exists():
		findings = append(findings, Finding{
			Summary: "virtual environment missing",
			Hint:    "run 'anyproj setup'",
		})
	case !env.Usable():
		findings = append(findings, Finding{
			Summary: "virtual environment has no interpreter",
			Hint:    "delete .venv and run 'anyproj setup' again",
		})
	default:
		logger.Info("venv: present", "path", ws.VenvDir())
	}

	if _, err := config.Load(ws.ConfigFile()); err != nil {
		findings = append(findings, Finding{
			Summary: "config.json unparseable",
			Hint:    "fix the JSON syntax or run 'anyproj bootstrap'",
		})
	} else {
		logger.Info("config.json: OK")
	}

	if scaffold.IsPlaceholderJSON(ws.FeaturesFile()) {
		findings = append(findings, Finding{
			Summary: workspace.FeaturesName + " missing or placeholder",
			Hint:    "fill in real project features",
		})
	} else {
		logger.Info(workspace.FeaturesName + ": OK")
	}

	if scaffold.IsPlaceholderMD(ws.ResearchFile()) {
		findings = append(findings, Finding{
			Summary: workspace.ResearchName + " missing or placeholder",
			Hint:    "replace the stub content with research notes",
		})
	} else {
		logger.Info(workspace.ResearchName + ": OK")
	}

	for _, dir := range scaffold.RequiredDirs {
		if !dirExists(ws.Join(dir)) {
			findings = append(findings, Finding{
				Summary: "required directory missing: " + dir,
				Hint:    "run 'anyproj bootstrap'",
			})
		}
	}

	return findings
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
