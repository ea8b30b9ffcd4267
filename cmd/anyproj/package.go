// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/release"
)

// packageCmd archives the workspace for release.
var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Create a release zip of the workspace under dist/",
	Long: `Package the workspace into dist/<project>-v<version>-<timestamp>.zip.

Version and project name come from config.json; virtual environments,
caches, earlier archives, and the integrity manifest are excluded.`,
	Args: cobra.NoArgs,
	RunE: runPackage,
}

func runPackage(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ws)
	if err != nil {
		return err
	}

	path, err := release.Archive(ws, release.DefaultProjectName(cfg.Project), cfg.Version, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Release package created: %s\n",
		SuccessStyle.Render("✓"), path)
	return nil
}
