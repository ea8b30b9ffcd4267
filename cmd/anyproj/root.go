// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for anyproj.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/anyproject/anyproj/internal/config"
	"github.com/anyproject/anyproj/internal/workspace"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// rootFlag overrides workspace root discovery
	rootFlag string
	// configFlag overrides the config file path
	configFlag string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "anyproj",
		Short: "Workspace bootstrap and environment utility",
		Long: TitleStyle.Render("anyproj") + SubtitleStyle.Render(" - Workspace bootstrap and environment utility") + `

anyproj manages a project workspace: it provisions an isolated Python
environment at the workspace root, forwards commands into it with exact
exit-code fidelity, and keeps the surrounding scaffolding (seed files,
planning data, integrity manifest) in shape.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'anyproj init' in a fresh checkout
  2. Provision the environment with 'anyproj setup'
  3. Forward commands with: anyproj run pytest

` + SubtitleStyle.Render("Examples:") + `
  anyproj setup                 Provision .venv (idempotent)
  anyproj run pytest -q         Run tests inside the environment
  anyproj doctor                Check workspace health
  anyproj status                Quick overview`,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "workspace root (default: discovered from the current directory)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: <workspace-root>/config.json)")

	// Add subcommands
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(integrityCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(packageCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(statusCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// resolveWorkspace returns the workspace for this invocation: the --root
// override when given, otherwise marker discovery upward from the current
// directory. Config is consulted best-effort for the environment directory
// name; commands that need config values call loadConfig and get its errors.
func resolveWorkspace() (workspace.Workspace, error) {
	var ws workspace.Workspace
	var err error
	if rootFlag != "" {
		ws, err = workspace.At(rootFlag)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return workspace.Workspace{}, fmt.Errorf("getting working directory: %w", err)
		}
		ws, err = workspace.Discover(cwd)
	}
	if err != nil {
		return ws, err
	}

	if cfg, cfgErr := config.Load(configPath(ws)); cfgErr == nil {
		if cfg.Venv.Dir != "" {
			ws = ws.WithVenvDirName(cfg.Venv.Dir)
		}
		if cfg.UI.Verbose {
			verbose = true
		}
	}
	return ws, nil
}

// configPath returns the config file for this invocation, honoring --config.
func configPath(ws workspace.Workspace) string {
	if configFlag != "" {
		return configFlag
	}
	return ws.ConfigFile()
}

// loadConfig loads the workspace config; verbose in config raises the log
// level only when the flag did not already.
func loadConfig(ws workspace.Workspace) (*config.Config, error) {
	cfg, err := config.Load(configPath(ws))
	if err != nil {
		return nil, err
	}
	if cfg.UI.Verbose {
		verbose = true
	}
	return cfg, nil
}

// newLogger returns the CLI logger writing to stderr, honoring --verbose.
func newLogger() *log.Logger {
	logger := log.New(os.Stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
