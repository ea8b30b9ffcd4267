// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/doctor"
)

// doctorCmd runs workspace health checks.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run workspace health checks",
	Long: `Check the workspace's health: virtual environment present and usable,
config.json parseable, seed files filled in, required directories in
place. Exits non-zero when any check fails.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	logger := newLogger()

	findings := doctor.Check(ws, logger)
	if len(findings) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s All checks passed\n", SuccessStyle.Render("✓"))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ErrorStyle.Render("Doctor found issues:"))
	for _, f := range findings {
		fmt.Fprintf(out, "  - %s (%s)\n", f.Summary, SubtitleStyle.Render(f.Hint))
	}
	return &ExitError{Code: 1}
}
