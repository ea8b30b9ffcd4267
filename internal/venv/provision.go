// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"io"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/anyproject/anyproj/internal/issue"
)

// testPackage is the one dependency every provisioned environment carries.
const testPackage = "pytest"

// Provisioner creates and refreshes an environment using a host Python
// interpreter.
type Provisioner struct {
	// Interpreter is the host interpreter used to create the environment
	// (config python.interpreter, default "python3").
	Interpreter string
	// Stdout and Stderr receive the underlying tooling's native output so
	// failures surface with pip's own diagnostics.
	Stdout io.Writer
	Stderr io.Writer
	// Logger receives progress messages. Nil disables logging.
	Logger *log.Logger
}

// Provision creates the environment if absent, upgrades pip, and installs
// the test package. Steps run strictly in order; the first failing step
// aborts with the underlying tool's error and no cleanup is attempted, so
// a failed run may leave a partially initialized directory that a
// subsequent run tolerates.
func (p *Provisioner) Provision(ctx context.Context, env Env) error {
	if !env.Exists() {
		p.logf("creating virtual environment", "path", env.Dir)
		if err := p.command(ctx, p.Interpreter, "-m", "venv", env.Dir); err != nil {
			return issue.NewErrorContext().
				WithOperation("create virtual environment").
				WithResource(env.Dir).
				WithSuggestion("Check that " + p.Interpreter + " is installed and on PATH").
				WithSuggestion("Check write permissions on the workspace root").
				Wrap(err).
				BuildError()
		}
	} else {
		p.logf("virtual environment already exists", "path", env.Dir)
	}

	p.logf("upgrading pip")
	if err := p.command(ctx, env.Pip(), "install", "--upgrade", "pip"); err != nil {
		return issue.NewErrorContext().
			WithOperation("upgrade pip").
			WithResource(env.Dir).
			WithSuggestion("Check network access or a local package cache").
			Wrap(err).
			BuildError()
	}

	p.logf("installing " + testPackage)
	if err := p.command(ctx, env.Pip(), "install", testPackage); err != nil {
		return issue.NewErrorContext().
			WithOperation("install " + testPackage).
			WithResource(env.Dir).
			WithSuggestion("Check network access or a local package cache").
			Wrap(err).
			BuildError()
	}

	return nil
}

func (p *Provisioner) command(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr
	return cmd.Run()
}

func (p *Provisioner) logf(msg string, kv ...any) {
	if p.Logger != nil {
		p.Logger.Info(msg, kv...)
	}
}
