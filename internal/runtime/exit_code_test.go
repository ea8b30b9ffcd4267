// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"testing"
)

func TestExitCodeIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code ExitCode
		want bool
	}{
		{"zero", 0, true},
		{"success boundary", 255, true},
		{"not provisioned", ExitNotProvisioned, true},
		{"command not found", ExitCommandNotFound, true},
		{"negative", -1, false},
		{"too large", 256, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, errs := tt.code.IsValid()
			if got != tt.want {
				t.Errorf("ExitCode(%d).IsValid() = %v, want %v", tt.code, got, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 {
					t.Fatalf("expected one validation error, got %d", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidExitCode) {
					t.Errorf("validation error does not wrap ErrInvalidExitCode: %v", errs[0])
				}
			}
		})
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitSuccess.IsSuccess() {
		t.Error("ExitSuccess.IsSuccess() = false")
	}
	if ExitNotProvisioned.IsSuccess() {
		t.Error("ExitNotProvisioned.IsSuccess() = true")
	}
}

func TestExitCodeString(t *testing.T) {
	t.Parallel()

	if got := ExitCommandNotFound.String(); got != "127" {
		t.Errorf("ExitCommandNotFound.String() = %q, want %q", got, "127")
	}
}
