// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError reports a failed startup step to the user: what kash was
// doing, what it was doing it to, and what the user can try next.
//
//	err := issue.NewErrorContext().
//		WithOperation("load configuration").
//		WithResource("./kash.cue").
//		WithSuggestion("Run kash without --config to use the defaults").
//		Wrap(cause).
//		BuildError()
type ActionableError struct {
	// Operation is a verb phrase such as "load configuration".
	Operation string
	// Resource names the file or setting involved. Optional.
	Resource string
	// Suggestions are printed as bullets under the message. Optional.
	Suggestions []string
	// Cause is the underlying error. Optional.
	Cause error
}

// Error returns "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders the message for a terminal. Suggestions follow as bullets;
// verbose output also numbers every error in the Cause chain.
func (e *ActionableError) Format(verbose bool) string {
	lines := []string{e.Error()}
	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		for _, s := range e.Suggestions {
			lines = append(lines, "  • "+s)
		}
	}
	if verbose && e.Cause != nil {
		lines = append(lines, "", "Error chain:")
		n := 0
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			n++
			lines = append(lines, fmt.Sprintf("  %d. %s", n, err))
		}
	}
	return strings.Join(lines, "\n")
}

// ErrorContext accumulates the fields of an ActionableError.
type ErrorContext struct {
	err ActionableError
}

func NewErrorContext() *ErrorContext { return &ErrorContext{} }

func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.err.Operation = op
	return c
}

func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.err.Resource = res
	return c
}

// WithSuggestion appends one suggestion; call it once per hint.
func (c *ErrorContext) WithSuggestion(s string) *ErrorContext {
	c.err.Suggestions = append(c.err.Suggestions, s)
	return c
}

func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.err.Cause = err
	return c
}

// Build returns a copy of the accumulated error, or nil if no operation
// was set.
func (c *ErrorContext) Build() *ActionableError {
	if c.err.Operation == "" {
		return nil
	}
	ae := c.err
	return &ae
}

// BuildError is Build typed as error, so a missing operation yields a true nil.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
