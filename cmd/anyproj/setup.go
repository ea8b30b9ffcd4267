// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/venv"
)

// setupCmd provisions the workspace's virtual environment.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Provision the workspace's virtual environment",
	Long: `Provision the isolated Python environment at <workspace-root>/.venv.

Creation is skipped when the directory already exists; the pip upgrade
and test-tooling install always re-run, so repeat invocations refresh the
environment without ever recreating it.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ws)
	if err != nil {
		return err
	}
	logger := newLogger()

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

	fmt.Fprintf(cmd.OutOrStdout(), "%s Environment ready at %s\n",
		SuccessStyle.Render("✓"), env.Dir)
	return nil
}
