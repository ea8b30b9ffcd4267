// SPDX-License-Identifier: MPL-2.0

// Package config loads the workspace configuration from config.json at
// the workspace root. A missing file yields defaults; a malformed one is
// an error. No environment variables are consulted.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/anyproject/anyproj/internal/issue"
)

// Defaults.
const (
	DefaultProject     = "anyproject"
	DefaultVersion     = "0.1.0"
	DefaultInterpreter = "python3"
	DefaultVenvDir     = ".venv"
)

type (
	// Config is the workspace configuration.
	Config struct {
		// Project is the project name, used in release archive names.
		Project string `mapstructure:"project"`
		// Version is the project version, used in release archive names.
		Version string `mapstructure:"version"`
		// Python configures the host interpreter used for provisioning.
		Python PythonConfig `mapstructure:"python"`
		// Venv configures the environment directory.
		Venv VenvConfig `mapstructure:"venv"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// PythonConfig configures environment provisioning.
	PythonConfig struct {
		// Interpreter is the host interpreter invoked as `<interpreter> -m venv`.
		Interpreter string `mapstructure:"interpreter"`
	}

	// VenvConfig configures the environment directory.
	VenvConfig struct {
		// Dir is the environment directory name relative to the workspace root.
		Dir string `mapstructure:"dir"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables verbose output when not overridden by the flag.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Project: DefaultProject,
		Version: DefaultVersion,
		Python:  PythonConfig{Interpreter: DefaultInterpreter},
		Venv:    VenvConfig{Dir: DefaultVenvDir},
	}
}

// Load reads the configuration file at path (normally
// <workspace-root>/config.json). A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("project", defaults.Project)
	v.SetDefault("version", defaults.Version)
	v.SetDefault("python.interpreter", defaults.Python.Interpreter)
	v.SetDefault("venv.dir", defaults.Venv.Dir)
	v.SetDefault("ui.verbose", false)

	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check the JSON syntax of config.json").
			WithSuggestion("Run 'anyproj bootstrap' to regenerate defaults").
			Wrap(err).
			BuildError()
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultFileContent is the config.json seeded by bootstrap.
func DefaultFileContent() map[string]any {
	return map[string]any{
		"project": DefaultProject,
		"version": DefaultVersion,
		"python":  map[string]any{"interpreter": DefaultInterpreter},
		"venv":    map[string]any{"dir": DefaultVenvDir},
	}
}
