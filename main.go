// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "github.com/anyproject/anyproj/cmd/anyproj"
)

func main() {
	cmd.Execute()
}
