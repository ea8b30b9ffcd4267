// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/clean"
)

var cleanVenv bool

// cleanCmd removes caches and generated debris.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove caches and generated files from the workspace",
	Long: `Remove Python caches (__pycache__, .pytest_cache), tmp/, *.pyc and
*.log files from the workspace, and make sure .gitignore covers them.

The virtual environment is never removed unless --venv is given.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanVenv, "venv", false, "also remove the virtual environment")
}

func runClean(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	logger := newLogger()

	removed, err := clean.Clean(ws, clean.Options{Venv: cleanVenv}, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Cleanup complete: %d paths removed\n",
		SuccessStyle.Render("✓"), len(removed))
	return nil
}
