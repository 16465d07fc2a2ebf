// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// NativeRuntime runs external programs as child processes of the interpreter.
type NativeRuntime struct {
	// Stdin, Stdout and Stderr are handed to the child. *os.File values are
	// passed through directly, so a terminal stays a terminal for the child.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env is the child environment. Nil inherits the interpreter's environment.
	Env []string
	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}

// NewNativeRuntime creates a runtime bound to the process standard streams.
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Resolve finds the executable that args[0] names, relative to the current
// working directory and the runtime's $PATH. Absolute names do not consult
// the working directory, so they resolve even when it has been removed.
func (r *NativeRuntime) Resolve(name string) (string, error) {
	env := expand.ListEnviron(r.environ()...)
	if filepath.IsAbs(name) {
		return interp.LookPathDir(filepath.Dir(name), env, name)
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return interp.LookPathDir(dir, env, name)
}

// Launch starts args[0] with args[1:] and waits for it to exit or be killed.
// The child sees args[0] exactly as given as its argv[0]. The child is never
// cancelled by the interpreter; only its own exit or a signal ends the wait.
func (r *NativeRuntime) Launch(_ context.Context, args []string) *Result {
	if len(args) == 0 {
		return NewErrorResult(ExitCodeNotFound, ErrEmptyCommand)
	}
	logger := r.logger()
	name := args[0]

	path, err := r.Resolve(name)
	if err != nil {
		logger.Debug("command not resolved", "name", name, "error", err)
		return NewErrorResult(ExitCodeNotFound, &CommandNotFoundError{Name: name, Err: err})
	}

	cmd := exec.Command(path)
	cmd.Args = slices.Clone(args)
	cmd.Env = r.environ()
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logger.Debug("launching", "path", path, "argv", quoteArgs(args))

	if err := cmd.Start(); err != nil {
		return NewErrorResult(ExitCodeCannotExecute, &SpawnError{Name: name, Path: path, Err: err})
	}

	waitErr := cmd.Wait()
	if cmd.ProcessState == nil {
		return NewErrorResult(ExitCodeCannotExecute, fmt.Errorf("wait for %s: %w", name, waitErr))
	}

	res := resultFromState(cmd.ProcessState)
	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		// The child ran but copying its I/O failed.
		res.Error = fmt.Errorf("%s: %w", name, waitErr)
	}

	logger.Debug("child finished",
		"pid", cmd.ProcessState.Pid(),
		"exit_code", res.ExitCode,
		"signaled", res.Signaled,
		"signal", res.Signal,
	)
	return res
}

func (r *NativeRuntime) environ() []string {
	if r.Env != nil {
		return r.Env
	}
	return os.Environ()
}

func (r *NativeRuntime) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard)
	}
	return r.Logger
}

// quoteArgs renders argv the way a user could retype it.
func quoteArgs(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		q, err := syntax.Quote(a, syntax.LangBash)
		if err != nil {
			q = fmt.Sprintf("%q", a)
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " ")
}
