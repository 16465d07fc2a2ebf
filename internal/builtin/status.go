// SPDX-License-Identifier: MPL-2.0

package builtin

import "fmt"

const (
	// Continue keeps the interactive loop prompting.
	Continue Status = iota
	// Terminate ends the interactive loop with a successful exit.
	Terminate
)

// Status is the continuation signal produced by every dispatched command.
type Status int

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Terminate:
		return "terminate"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
