// SPDX-License-Identifier: MPL-2.0

package runtime

// Result contains the result of a forwarded command execution.
type Result struct {
	// ExitCode is the forwarded command's exit status, passed through verbatim.
	ExitCode ExitCode
	// Error is set only for infrastructure failures (command not resolvable,
	// exec failure). A non-zero ExitCode from the command itself is not an error.
	Error error
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than infrastructure failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}
