// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/issue"
	"github.com/anyproject/anyproj/internal/runtime"
	"github.com/anyproject/anyproj/internal/venv"
)

// runCmd forwards a command into the provisioned environment.
var runCmd = &cobra.Command{
	Use:   "run <command> [args...]",
	Short: "Run a command inside the provisioned environment",
	Long: `Run a command inside the workspace's virtual environment.

The command is resolved against the environment's bin directory first,
then PATH, and executed with the environment activated (VIRTUAL_ENV set,
bin directory prepended to PATH). Arguments pass through unmodified and
the command's exit status becomes anyproj's own.

Exits with status 2 when the environment has not been provisioned yet.`,
	Example: `  anyproj run pytest -q
  anyproj run python -c "print('hello')"
  anyproj run pip install requests`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	// Flags after the command name belong to the forwarded command.
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}

	env := venv.New(ws.VenvDir())
	if !env.Exists() {
		fmt.Fprintf(os.Stderr, "%s environment %s not found: run %s first\n",
			ErrorStyle.Render("Error:"), env.Dir, CmdStyle.Render("anyproj setup"))
		if verbose {
			printIssue(issue.NotProvisionedId)
		}
		return &ExitError{Code: runtime.ExitNotProvisioned}
	}

	fwd := runtime.NewForwarder(env.Dir, env.BinDir())
	result := fwd.Forward(runtime.ForwardContext{
		Context: cmd.Context(),
		Argv:    args,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	})

	// On Unix a successful handoff never returns; reaching here means the
	// command could not be started, or (on Windows) it ran to completion.
	if result.Error != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(result.Error, verbose))
		return &ExitError{Code: result.ExitCode}
	}
	if !result.ExitCode.IsSuccess() {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
