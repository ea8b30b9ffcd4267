// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/issue"
	"github.com/anyproject/anyproj/internal/scaffold"
	"github.com/anyproject/anyproj/internal/venv"
)

var initAllowPlaceholders bool

// initCmd performs full workspace initialization.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Validate, bootstrap, and provision the workspace",
	Long: `Fully initialize the workspace: validate and repair the structure,
refuse to proceed while the seed files are unedited templates, bootstrap
whatever is still missing, provision the virtual environment, and record
the initialized state in memory/state.json.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initAllowPlaceholders, "allow-placeholders", false,
		"initialize even when seed files are unedited templates")
}

func runInit(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	logger := newLogger()

	if _, err := scaffold.Validate(ws, logger); err != nil {
		return err
	}

	if !initAllowPlaceholders {
		featuresStub := scaffold.IsPlaceholderJSON(ws.FeaturesFile())
		researchStub := scaffold.IsPlaceholderMD(ws.ResearchFile())
		if featuresStub || researchStub {
			if featuresStub {
				logger.Warn("seed file is still a template", "path", ws.FeaturesFile())
			}
			if researchStub {
				logger.Warn("seed file is still a template", "path", ws.ResearchFile())
			}
			printIssue(issue.PlaceholderSeedId)
			return &ExitError{Code: 1}
		}
	}

	if _, err := scaffold.Bootstrap(ws, logger); err != nil {
		return err
	}

	cfg, err := loadConfig(ws)
	if err != nil {
		return err
	}
	env := venv.New(ws.VenvDir())
	p := &venv.Provisioner{
		Interpreter: cfg.Python.Interpreter,
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
		Logger:      logger,
	}
	if err := p.Provision(cmd.Context(), env); err != nil {
		return err
	}

	if err := ws.MergeState(map[string]any{
		"status":    "initialized",
		"last_init": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Workspace initialized at %s\n",
		SuccessStyle.Render("✓"), ws.Root())
	return nil
}
