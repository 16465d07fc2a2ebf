// SPDX-License-Identifier: MPL-2.0

package lineread

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/kashsh/kash/internal/testutil"
)

type readResult struct {
	line string
	err  error
}

// newPtyReader returns a TerminalReader reading from a pty slave and the
// master end that plays the keyboard.
func newPtyReader(t *testing.T) (*TerminalReader, *os.File) {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	t.Cleanup(func() { testutil.MustClose(t, ptmx) })
	t.Cleanup(func() { testutil.MustClose(t, tty) })

	// Keystrokes may arrive before the editor enters raw mode; a cooked
	// slave would swallow Ctrl-C.
	state, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		t.Fatalf("MakeRaw: %v", err)
	}
	t.Cleanup(func() { _ = term.Restore(int(tty.Fd()), state) })

	r, err := NewTerminalReader(Options{In: tty, Out: io.Discard, Err: io.Discard})
	if err != nil {
		t.Fatalf("NewTerminalReader: %v", err)
	}
	t.Cleanup(func() {
		if err := r.Close(); err != nil {
			t.Logf("Close: %v", err)
		}
	})
	return r, ptmx
}

func typeAndRead(t *testing.T, r *TerminalReader, ptmx *os.File, keys string) (string, error) {
	t.Helper()

	done := make(chan readResult, 1)
	go func() {
		line, err := r.ReadLine("kash> ")
		done <- readResult{line, err}
	}()
	if _, err := ptmx.WriteString(keys); err != nil {
		t.Fatalf("write %q: %v", keys, err)
	}

	select {
	case res := <-done:
		return res.line, res.err
	case <-time.After(5 * time.Second):
		t.Fatalf("ReadLine did not return after typing %q", keys)
		return "", nil
	}
}

func TestTerminalReader_ReadLine(t *testing.T) {
	t.Parallel()

	r, ptmx := newPtyReader(t)

	line, err := typeAndRead(t, r, ptmx, "ls -l\r")
	if err != nil || line != "ls -l" {
		t.Fatalf("ReadLine after Enter = (%q, %v), want (%q, nil)", line, err, "ls -l")
	}

	line, err = typeAndRead(t, r, ptmx, "\x03")
	if err != nil || line != "" {
		t.Fatalf("ReadLine after Ctrl-C = (%q, %v), want (\"\", nil)", line, err)
	}

	line, err = typeAndRead(t, r, ptmx, "\x04")
	if !errors.Is(err, io.EOF) || line != "" {
		t.Fatalf("ReadLine after Ctrl-D = (%q, %v), want (\"\", io.EOF)", line, err)
	}
}

func TestTerminalReader_InterruptDiscardsPartialLine(t *testing.T) {
	t.Parallel()

	r, ptmx := newPtyReader(t)

	line, err := typeAndRead(t, r, ptmx, "half typed\x03")
	if err != nil || line != "" {
		t.Fatalf("ReadLine after Ctrl-C = (%q, %v), want (\"\", nil)", line, err)
	}

	line, err = typeAndRead(t, r, ptmx, "pwd\r")
	if err != nil || line != "pwd" {
		t.Fatalf("ReadLine after interrupt = (%q, %v), want (%q, nil)", line, err, "pwd")
	}
}

func TestNewTerminalReader_BindsTerminalHooks(t *testing.T) {
	t.Parallel()

	r, _ := newPtyReader(t)
	cfg := r.rl.Config
	if cfg.FuncIsTerminal == nil || !cfg.FuncIsTerminal() {
		t.Error("FuncIsTerminal should report the pty slave as a terminal")
	}
	if got := cfg.FuncGetWidth(); got <= 0 {
		t.Errorf("FuncGetWidth() = %d, want a positive width", got)
	}
}
