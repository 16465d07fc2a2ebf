// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
)

var (
	// ErrCommandNotFound is wrapped by CommandNotFoundError.
	ErrCommandNotFound = errors.New("command not found")
	// ErrSpawnFailed is wrapped by SpawnError.
	ErrSpawnFailed = errors.New("spawn failed")
	// ErrEmptyCommand is returned when Launch receives no arguments.
	ErrEmptyCommand = errors.New("empty command")
)

type (
	// CommandNotFoundError reports that no executable matched Name.
	// Err holds the resolution failure, if any.
	CommandNotFoundError struct {
		Name string
		Err  error
	}

	// SpawnError reports that a resolved program could not be started.
	SpawnError struct {
		Name string
		Path string
		Err  error
	}
)

func (e *CommandNotFoundError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Name, ErrCommandNotFound)
}

// Unwrap exposes both ErrCommandNotFound and the resolution failure.
func (e *CommandNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCommandNotFound}
	}
	return []error{ErrCommandNotFound, e.Err}
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Unwrap exposes both ErrSpawnFailed and the start failure.
func (e *SpawnError) Unwrap() []error {
	return []error{ErrSpawnFailed, e.Err}
}
