// SPDX-License-Identifier: MPL-2.0

// Package runtime executes forwarded commands inside a provisioned
// environment. It resolves the command against the environment's bin
// directory, builds the activated process environment, and hands off to
// the command with exact exit-code and stream fidelity: on Unix the
// forwarder replaces the current process, so the forwarded command's exit
// status and inherited stdio are preserved byte for byte.
package runtime
