// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/plan"
)

var (
	batchSize  int
	batchDelay time.Duration
)

// batchCmd slices pending tasks into batch files.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch pending tasks into memory/batches for downstream processing",
	Long: `Slice the todo list's pending tasks into numbered batch files under
memory/batches/, mark them batched, and record the run in
memory/state.json. An optional delay throttles batch creation for
rate-limited consumers.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchSize, "batch-size", plan.DefaultBatchSize, "tasks per batch file")
	batchCmd.Flags().DurationVar(&batchDelay, "delay", 0, "pause between batch writes (e.g. 2s)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	logger := newLogger()

	paths, err := plan.BatchPending(ws, plan.BatchOptions{
		Size:  batchSize,
		Delay: batchDelay,
	}, time.Now(), logger)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No pending tasks to batch.")
		return nil
	}

	if err := ws.MergeState(map[string]any{
		"last_batch": map[string]any{
			"batches": len(paths),
			"time":    time.Now().UTC().Format(time.RFC3339),
		},
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Created %d batch files in %s\n",
		SuccessStyle.Render("✓"), len(paths), ws.BatchesDir())
	return nil
}
