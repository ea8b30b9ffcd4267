// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/anyproject/anyproj/internal/issue"
)

// formatErrorForDisplay renders an error for terminal output, using the
// actionable formatting (suggestions, verbose chains) when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}

// printIssue writes a known issue's rendered guidance to stderr. Falls
// back to the raw markdown when rendering fails (e.g. no TTY styling).
func printIssue(id issue.Id) {
	is := issue.Get(id)
	if is == nil {
		return
	}
	rendered, err := is.Render("auto")
	if err != nil {
		rendered = string(is.MarkdownMsg())
	}
	fmt.Fprintln(os.Stderr, rendered)
}
