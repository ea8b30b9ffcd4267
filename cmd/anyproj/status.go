// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/plan"
	"github.com/anyproject/anyproj/internal/venv"
	"github.com/anyproject/anyproj/internal/workspace"
)

// statusCmd prints a quick workspace overview.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a quick workspace overview",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, TitleStyle.Render("Workspace"), ws.Root())

	env := venv.New(ws.VenvDir())
	switch {
	case env.Usable():
		fmt.Fprintf(out, "%s %s\n", SuccessStyle.Render("venv:"), env.Dir)
	case env.Exists():
		fmt.Fprintf(out, "%s %s (no interpreter)\n", WarningStyle.Render("venv:"), env.Dir)
	default:
		fmt.Fprintf(out, "%s not provisioned (run %s)\n",
			WarningStyle.Render("venv:"), CmdStyle.Render("anyproj setup"))
	}

	for _, name := range []string{workspace.FeaturesName, workspace.ResearchName, workspace.ConfigFileName} {
		state := "MISSING"
		if _, err := os.Stat(ws.Join(name)); err == nil {
			state = "OK"
		}
		fmt.Fprintf(out, "%s: %s\n", name, state)
	}

	todo := plan.LoadTodo(ws)
	if len(todo.Tasks) == 0 {
		fmt.Fprintln(out, "todo: none")
	} else {
		fmt.Fprintf(out, "todo: %d tasks (%d pending, %d batched)\n",
			len(todo.Tasks), todo.CountByStatus(plan.StatusPending), todo.CountByStatus(plan.StatusBatched))
	}

	state := ws.ReadState()
	if lastInit, ok := state["last_init"].(string); ok {
		fmt.Fprintf(out, "last init: %s\n", lastInit)
	}

	return nil
}
