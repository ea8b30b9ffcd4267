// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/scaffold"
)

// validateCmd checks and repairs the workspace structure.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the workspace structure, creating anything missing",
	Long: `Validate the workspace structure.

Missing required files and directories are created from their seed
templates, empty required directories get a .gitkeep, and .gitignore is
extended to cover virtual environments and caches.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	logger := newLogger()

	report, err := scaffold.Validate(ws, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Validation complete: %d created, %d already present\n",
		SuccessStyle.Render("✓"), len(report.Created), len(report.Existing))
	return nil
}
