// SPDX-License-Identifier: MPL-2.0

package lineread

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// defaultWidth is used when the terminal reports no size, as a fresh pty does.
const defaultWidth = 80

// TerminalReader reads lines through an interactive line editor.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader creates a line editor bound to opts.In.
func NewTerminalReader(opts Options) (*TerminalReader, error) {
	cfg := &readline.Config{
		HistoryFile:     opts.HistoryFile,
		HistoryLimit:    opts.HistoryLimit,
		InterruptPrompt: "^C",
		Stdout:          opts.Out,
		Stderr:          opts.Err,
	}
	if f, ok := opts.In.(*os.File); ok && f != os.Stdin {
		cfg.Stdin = readline.NewCancelableStdin(f)
		bindTerminal(cfg, int(f.Fd()))
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("start line editor: %w", err)
	}
	return &TerminalReader{rl: rl}, nil
}

// bindTerminal points readline's terminal hooks at fd. By default readline
// only switches os.Stdin to raw mode, and a cooked terminal turns Ctrl-C
// into a signal before the editor can see it.
func bindTerminal(cfg *readline.Config, fd int) {
	var saved *term.State
	cfg.FuncIsTerminal = func() bool { return term.IsTerminal(fd) }
	cfg.FuncMakeRaw = func() error {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		saved = state
		return nil
	}
	cfg.FuncExitRaw = func() error {
		if saved == nil {
			return nil
		}
		state := saved
		saved = nil
		return term.Restore(fd, state)
	}
	cfg.FuncGetWidth = func() int {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
		return defaultWidth
	}
}

// ReadLine implements Reader. An interrupt at the prompt discards the
// partial line and yields an empty line.
func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)

	line, err := r.rl.Readline()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, readline.ErrInterrupt):
		return "", nil
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", fmt.Errorf("read line: %w", err)
	}
}

// Close restores the terminal and flushes history.
func (r *TerminalReader) Close() error {
	return r.rl.Close()
}
