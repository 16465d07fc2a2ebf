// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"testing"
)

func TestExitCode_IsSuccessAndString(t *testing.T) {
	t.Parallel()

	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("ExitCode(1).IsSuccess() = true")
	}
	if got := ExitCodeNotFound.String(); got != "127" {
		t.Errorf("String() = %q, want %q", got, "127")
	}
}

func TestResult_Constructors(t *testing.T) {
	t.Parallel()

	if !NewSuccessResult().Success() {
		t.Error("NewSuccessResult().Success() = false")
	}
	if r := NewExitCodeResult(0); !r.Success() || r.ExitCode != 0 {
		t.Errorf("NewExitCodeResult(0) = %+v", r)
	}
	if NewExitCodeResult(2).Success() {
		t.Error("NewExitCodeResult(2).Success() = true")
	}
	boom := errors.New("boom")
	r := NewErrorResult(ExitCodeCannotExecute, boom)
	if r.Success() || !errors.Is(r.Error, boom) || r.ExitCode != ExitCodeCannotExecute {
		t.Errorf("NewErrorResult = %+v", r)
	}
}

func TestCommandNotFoundError(t *testing.T) {
	t.Parallel()

	bare := &CommandNotFoundError{Name: "nope"}
	if got := bare.Error(); got != "nope: command not found" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(bare, ErrCommandNotFound) {
		t.Error("bare error should match ErrCommandNotFound")
	}

	cause := errors.New("permission denied")
	wrapped := &CommandNotFoundError{Name: "./x", Err: cause}
	if !errors.Is(wrapped, cause) || !errors.Is(wrapped, ErrCommandNotFound) {
		t.Error("wrapped error should match both the cause and ErrCommandNotFound")
	}
}
