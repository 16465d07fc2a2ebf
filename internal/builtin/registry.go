// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"

	"github.com/kashsh/kash/internal/issue"
)

// Prefix starts every diagnostic written by kash.
const Prefix = "kash"

type (
	// Func runs a builtin. args[0] is the builtin name.
	Func func(ctx context.Context, env *Env, args []string) Status

	// Entry pairs a builtin name with its operation.
	Entry struct {
		// Name is matched exactly against the first token of a command line.
		Name string
		// Usage is a one-line synopsis shown by help (e.g. "cd <path>").
		Usage string
		// Summary describes what the builtin does.
		Summary string
		// Run executes the builtin.
		Run Func
	}

	// Env is the interpreter state a builtin may use.
	Env struct {
		Stdout io.Writer
		Stderr io.Writer
		Logger *log.Logger
		// Registry is the table the builtin was dispatched from.
		Registry *Registry
		// MarkdownStyle is the glamour style used for rendered output.
		MarkdownStyle string
		// Verbose makes Explain print catalog guidance.
		Verbose bool
	}

	// Registry is an ordered, read-only table of builtins.
	Registry struct {
		entries []Entry
	}
)

// NewRegistry builds a registry from entries in the given order.
// It panics on an empty name, a nil operation or a duplicate name.
func NewRegistry(entries ...Entry) *Registry {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			panic("builtin: cannot register builtin with empty name")
		}
		if e.Run == nil {
			panic(fmt.Sprintf("builtin: %q has no operation", e.Name))
		}
		if _, dup := seen[e.Name]; dup {
			panic(fmt.Sprintf("builtin: %q already registered", e.Name))
		}
		seen[e.Name] = struct{}{}
	}
	return &Registry{entries: slices.Clone(entries)}
}

// Default returns the standard builtin table: cd, exit, help.
func Default() *Registry {
	return NewRegistry(
		Entry{Name: "cd", Usage: "cd <path>", Summary: "change the working directory", Run: changeDirectory},
		Entry{Name: "exit", Usage: "exit", Summary: "leave the shell", Run: exit},
		Entry{Name: "help", Usage: "help", Summary: "show this help", Run: help},
	)
}

// Lookup returns the first entry whose name equals name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the table in registration order.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Names returns builtin names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Name)
	}
	return names
}

// Reportf writes a "kash: ..." diagnostic line to the environment's stderr.
func (e *Env) Reportf(format string, args ...any) {
	fmt.Fprintf(e.stderr(), "%s: %s\n", Prefix, fmt.Sprintf(format, args...))
}

// Report writes err as a "kash: ..." diagnostic line.
func (e *Env) Report(err error) {
	e.Reportf("%v", err)
}

// Explain renders the catalog entry id to stderr when Verbose is set.
func (e *Env) Explain(id issue.Id) {
	if !e.Verbose {
		return
	}
	i := issue.Get(id)
	if i == nil {
		return
	}
	out, err := i.Render(e.markdownStyle())
	if err != nil {
		e.logger().Debug("render issue", "id", id, "err", err)
		return
	}
	_, _ = io.WriteString(e.stderr(), out)
}

func (e *Env) markdownStyle() string {
	if e.MarkdownStyle == "" {
		return DefaultMarkdownStyle
	}
	return e.MarkdownStyle
}

func (e *Env) stdout() io.Writer {
	if e.Stdout == nil {
		return os.Stdout
	}
	return e.Stdout
}

func (e *Env) stderr() io.Writer {
	if e.Stderr == nil {
		return os.Stderr
	}
	return e.Stderr
}

func (e *Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}
