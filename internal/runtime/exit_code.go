// SPDX-License-Identifier: MPL-2.0

package runtime

import "strconv"

const (
	// ExitCodeCannotExecute is reported when a program was found but could not be started.
	ExitCodeCannotExecute ExitCode = 126
	// ExitCodeNotFound is reported when no executable matched the command name.
	ExitCodeNotFound ExitCode = 127

	// signalExitBase is added to the signal number of a child killed by a signal.
	signalExitBase = 128
)

// ExitCode is a process exit status. Zero means success.
type ExitCode int

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
