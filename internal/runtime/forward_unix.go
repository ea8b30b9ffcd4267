// SPDX-License-Identifier: MPL-2.0

//go:build unix

package runtime

import (
	"syscall"

	"github.com/anyproject/anyproj/internal/issue"
)

// executableCandidates returns the paths to probe for a bare command name.
func executableCandidates(base string) []string {
	return []string{base}
}

// handoff replaces the current process with the forwarded command. Streams
// are inherited by definition and the command's exit status becomes the
// process's own. Only returns when exec itself fails.
func (f *Forwarder) handoff(ctx ForwardContext, path string, argv, env []string) *Result {
	err := syscall.Exec(path, argv, env)
	// Exec only returns on failure.
	return NewErrorResult(ExitFailure, issue.WrapWithContext(err, "forward command", path))
}
