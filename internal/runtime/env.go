// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"os"
	"strings"
)

// Variables that would leak the host's Python setup into the environment
// and are therefore dropped before forwarding.
var droppedEnvVars = []string{"PYTHONHOME", "VIRTUAL_ENV"}

// ActivatedEnv builds the process environment for a command forwarded into
// the environment rooted at venvDir. It mirrors what a venv activate
// script does: VIRTUAL_ENV is set, the environment's bin directory is
// prepended to PATH, and PYTHONHOME is cleared.
func ActivatedEnv(venvDir, binDir string) []string {
	env := make([]string, 0, len(os.Environ())+2)
	path := ""
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if dropped(name) {
			continue
		}
		if strings.EqualFold(name, "PATH") {
			path = value
			continue
		}
		env = append(env, kv)
	}

	env = append(env, "VIRTUAL_ENV="+venvDir)
	env = append(env, "PATH="+binDir+string(os.PathListSeparator)+path)
	return env
}

func dropped(name string) bool {
	for _, d := range droppedEnvVars {
		if strings.EqualFold(name, d) {
			return true
		}
	}
	return false
}
