// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/anyproject/anyproj/internal/issue"
)

// ErrCommandNotFound is returned when the forwarded command cannot be
// resolved in the environment's bin directory or on PATH.
var ErrCommandNotFound = errors.New("command not found")

type (
	// ForwardContext contains everything needed to forward a command.
	ForwardContext struct {
		// Context is the Go context for cancellation. It only applies to the
		// portable Run path; process replacement hands control to the command.
		Context context.Context
		// Argv is the command and its arguments, passed through unmodified.
		Argv []string
		// Stdout is where to write standard output.
		Stdout io.Writer
		// Stderr is where to write standard error.
		Stderr io.Writer
		// Stdin is where to read standard input.
		Stdin io.Reader
	}

	// Forwarder executes commands inside a provisioned environment.
	Forwarder struct {
		// VenvDir is the environment root directory.
		VenvDir string
		// BinDir is the environment's executable directory.
		BinDir string
	}
)

// NewForwarder creates a Forwarder for the environment rooted at venvDir
// with the given executable directory.
func NewForwarder(venvDir, binDir string) *Forwarder {
	return &Forwarder{VenvDir: venvDir, BinDir: binDir}
}

// Resolve finds the executable for name. The environment's bin directory
// is consulted before PATH so environment-installed tools shadow host
// ones. Names containing a path separator are used as-is.
func (f *Forwarder) Resolve(name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		if isExecutable(name) {
			return name, nil
		}
		return "", issue.NewErrorContext().
			WithOperation("resolve command").
			WithResource(name).
			WithSuggestion("Check the path exists and is executable").
			Wrap(ErrCommandNotFound).
			BuildError()
	}

	for _, candidate := range executableCandidates(filepath.Join(f.BinDir, name)) {
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	return "", issue.NewErrorContext().
		WithOperation("resolve command").
		WithResource(name).
		WithSuggestion("Install it into the environment with 'anyproj run pip install ...'").
		WithSuggestion("Check for typos in the command name").
		Wrap(ErrCommandNotFound).
		BuildError()
}

// Forward executes the command with pass-through semantics. On Unix the
// current process is replaced, so Forward only returns on failure; the
// forwarded command's exit status becomes the caller's own. On other
// platforms it falls back to Run.
func (f *Forwarder) Forward(ctx ForwardContext) *Result {
	path, err := f.Resolve(ctx.Argv[0])
	if err != nil {
		return NewErrorResult(ExitCommandNotFound, err)
	}
	argv := append([]string{path}, ctx.Argv[1:]...)
	return f.handoff(ctx, path, argv, ActivatedEnv(f.VenvDir, f.BinDir))
}

// Run executes the command as a child process with inherited streams and
// returns its exit code. Used on platforms without process replacement
// and by tests that need the forwarder to return.
func (f *Forwarder) Run(ctx ForwardContext) *Result {
	path, err := f.Resolve(ctx.Argv[0])
	if err != nil {
		return NewErrorResult(ExitCommandNotFound, err)
	}
	return f.runChild(ctx, path, ActivatedEnv(f.VenvDir, f.BinDir))
}

func (f *Forwarder) runChild(ctx ForwardContext, path string, env []string) *Result {
	goCtx := ctx.Context
	if goCtx == nil {
		goCtx = context.Background()
	}

	cmd := exec.CommandContext(goCtx, path, ctx.Argv[1:]...)
	cmd.Env = env
	cmd.Stdout = ctx.Stdout
	cmd.Stderr = ctx.Stderr
	cmd.Stdin = ctx.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return NewExitCodeResult(ExitCode(exitErr.ExitCode()))
		}
		return NewErrorResult(ExitFailure, issue.WrapWithContext(err, "forward command", path))
	}
	return NewSuccessResult()
}

// isExecutable reports whether path exists as a regular file. Execute
// permission bits are left to the OS at exec time; Windows has none.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
