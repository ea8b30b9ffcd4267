// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/plan"
)

// planCmd generates planning data from the features file.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate memory/plan.json from PROGRAM_FEATURES.json",
	Long: `Derive tasks from PROGRAM_FEATURES.json, write them to
memory/plan.json, and merge new tasks into memory/todo.json. Tasks
already in the todo list (matched by id) are never duplicated.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	logger := newLogger()

	p, added, err := plan.Generate(ws, time.Now(), logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Plan generated with %d tasks; %d new tasks added to %s\n",
		SuccessStyle.Render("✓"), len(p.Tasks), added, ws.TodoFile())
	return nil
}
