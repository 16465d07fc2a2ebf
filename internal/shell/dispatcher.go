// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kashsh/kash/internal/builtin"
	"github.com/kashsh/kash/internal/issue"
	"github.com/kashsh/kash/internal/runtime"
)

// Launcher starts an external program and waits for it.
type Launcher interface {
	Launch(ctx context.Context, args []string) *runtime.Result
}

// Dispatcher routes command lines to builtins or the Launcher.
type Dispatcher struct {
	builtins *builtin.Registry
	launcher Launcher
	env      *builtin.Env
}

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	Builtins      *builtin.Registry
	Launcher      Launcher
	Stdout        io.Writer
	Stderr        io.Writer
	Logger        *log.Logger
	MarkdownStyle string
	// Verbose renders catalog guidance after diagnostics.
	Verbose bool
}

// NewDispatcher creates a Dispatcher. A nil Builtins uses builtin.Default and
// a nil Launcher uses a runtime.NativeRuntime over the process streams.
func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	if opts.Builtins == nil {
		opts.Builtins = builtin.Default()
	}
	if opts.Launcher == nil {
		opts.Launcher = runtime.NewNativeRuntime()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = builtin.DefaultMarkdownStyle
	}

	return &Dispatcher{
		builtins: opts.Builtins,
		launcher: opts.Launcher,
		env: &builtin.Env{
			Stdout:        opts.Stdout,
			Stderr:        opts.Stderr,
			Logger:        opts.Logger,
			Registry:      opts.Builtins,
			MarkdownStyle: opts.MarkdownStyle,
			Verbose:       opts.Verbose,
		},
	}
}

// Dispatch executes one tokenized command line.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string) builtin.Status {
	if len(tokens) == 0 {
		return builtin.Continue
	}

	if entry, ok := d.builtins.Lookup(tokens[0]); ok {
		d.env.Logger.Debug("running builtin", "name", entry.Name, "args", len(tokens)-1)
		return entry.Run(ctx, d.env, tokens)
	}

	res := d.launcher.Launch(ctx, tokens)
	switch {
	case res.Error != nil:
		d.env.Report(res.Error)
		if errors.Is(res.Error, runtime.ErrCommandNotFound) {
			d.env.Explain(issue.CommandNotFoundId)
		}
	case res.Signaled:
		d.env.Logger.Debug("child terminated by signal", "name", tokens[0], "signal", res.Signal, "status", res.ExitCode)
	case !res.Success():
		d.env.Logger.Debug("child exited", "name", tokens[0], "status", res.ExitCode)
	}
	return builtin.Continue
}
