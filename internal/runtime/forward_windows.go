// SPDX-License-Identifier: MPL-2.0

//go:build windows

package runtime

// executableCandidates returns the paths to probe for a bare command name.
// Windows launchers live in Scripts\ with executable extensions.
func executableCandidates(base string) []string {
	return []string{base + ".exe", base + ".bat", base + ".cmd", base}
}

// handoff runs the command as a child process; Windows has no execve, so
// exit-code fidelity is preserved by extracting the child's status instead
// of replacing the process.
func (f *Forwarder) handoff(ctx ForwardContext, path string, argv, env []string) *Result {
	_ = argv // argv[0] rewriting is meaningless without process replacement
	return f.runChild(ctx, path, env)
}
