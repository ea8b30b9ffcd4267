// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/scaffold"
)

// bootstrapCmd repairs the workspace structure.
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create missing workspace directories, seed files, and config defaults",
	Long: `Bring the workspace structure up to date.

Idempotent and non-destructive: directories and files are created only
when missing, config.json gains absent default keys (existing keys win),
and a legacy instructions.md is migrated to rules.md.`,
	Args: cobra.NoArgs,
	RunE: runBootstrap,
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	logger := newLogger()

	report, err := scaffold.Bootstrap(ws, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Bootstrap complete: %d created, %d already present\n",
		SuccessStyle.Render("✓"), len(report.Created), len(report.Existing))
	return nil
}
