// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/integrity"
	"github.com/anyproject/anyproj/internal/issue"
	"github.com/anyproject/anyproj/internal/workspace"
)

var integrityUpdate bool

// integrityCmd maintains the workspace file manifest.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check workspace files against the SHA-256 manifest",
	Long: `Check every workspace file against file_manifest.json.

When no manifest exists one is created. Otherwise changed, missing, and
new files are reported and the command exits non-zero on drift;
--update accepts the current state and rewrites the manifest.`,
	Args: cobra.NoArgs,
	RunE: runIntegrity,
}

func init() {
	integrityCmd.Flags().BoolVar(&integrityUpdate, "update", false, "rewrite the manifest from the current state")
}

func runIntegrity(cmd *cobra.Command, args []string) error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	logger := newLogger()

	current, err := integrity.Build(ws.Root(), workspace.ManifestName)
	if err != nil {
		return issue.WrapWithOperation(err, "scan workspace files")
	}

	if _, statErr := os.Stat(ws.ManifestFile()); statErr != nil || integrityUpdate {
		if err := integrity.SaveManifest(ws.ManifestFile(), current); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Manifest written: %s (%d files)\n",
			SuccessStyle.Render("✓"), ws.ManifestFile(), len(current))
		return nil
	}

	recorded, err := integrity.LoadManifest(ws.ManifestFile())
	if err != nil {
		return issue.WrapWithContext(err, "load manifest", ws.ManifestFile())
	}

	diff := integrity.Compare(recorded, current)
	if diff.Clean() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s All %d files match the manifest\n",
			SuccessStyle.Render("✓"), len(current))
		return nil
	}

	out := cmd.OutOrStdout()
	for _, p := range diff.Changed {
		fmt.Fprintf(out, "%s %s\n", WarningStyle.Render("changed:"), p)
	}
	for _, p := range diff.Missing {
		fmt.Fprintf(out, "%s %s\n", ErrorStyle.Render("missing:"), p)
	}
	for _, p := range diff.Added {
		fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("new:"), p)
	}
	logger.Error("workspace drifted from manifest",
		"changed", len(diff.Changed), "missing", len(diff.Missing), "new", len(diff.Added))
	if verbose {
		printIssue(issue.ManifestDriftId)
	}
	return &ExitError{Code: 1}
}
