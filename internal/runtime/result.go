// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"os"
	"syscall"
)

// Result describes how one launch ended.
type Result struct {
	// ExitCode is the child's exit status, 128+N when killed by signal N,
	// or ExitCodeNotFound/ExitCodeCannotExecute when no child ran.
	ExitCode ExitCode
	// Signaled is true when the child was terminated by a signal.
	Signaled bool
	// Signal names the terminating signal when Signaled is true.
	Signal string
	// Error is set when the launch itself failed.
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

// Success reports whether the child ran and exited with status 0.
func (r *Result) Success() bool {
	return r.Error == nil && !r.Signaled && r.ExitCode.IsSuccess()
}

// resultFromState converts the state of a reaped child.
func resultFromState(state *os.ProcessState) *Result {
	switch code := state.ExitCode(); {
	case code == 0:
		return NewSuccessResult()
	case code > 0:
		return NewExitCodeResult(ExitCode(code))
	}

	res := &Result{ExitCode: ExitCodeCannotExecute}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		sig := ws.Signal()
		res.Signaled = true
		res.Signal = sig.String()
		res.ExitCode = ExitCode(signalExitBase + int(sig))
	}
	return res
}
