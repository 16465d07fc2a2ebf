// SPDX-License-Identifier: MPL-2.0

package lineread

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

type (
	// Reader returns one line of input per call.
	//
	// ReadLine writes prompt, blocks until a line is available and returns it
	// without its terminator. When the source is exhausted and no data is
	// pending it returns "" and io.EOF. A final line lacking a terminator is
	// returned with a nil error; the following call reports io.EOF.
	Reader interface {
		ReadLine(prompt string) (string, error)
		Close() error
	}

	// Options selects and configures a Reader.
	Options struct {
		// In is the input source. Defaults to os.Stdin.
		In io.Reader
		// Out receives the prompt. Defaults to os.Stdout.
		Out io.Writer
		// Err receives line editor diagnostics. Defaults to os.Stderr.
		Err io.Writer
		// LineEditor enables the interactive editor when In is a terminal.
		LineEditor bool
		// HistoryFile persists editor history when non-empty.
		HistoryFile string
		// HistoryLimit caps the in-memory history. Zero uses the editor default.
		HistoryLimit int
		Logger       *log.Logger
	}

	// StreamReader reads newline-terminated lines from an io.Reader.
	StreamReader struct {
		in  *bufio.Reader
		out io.Writer
	}
)

// New returns a TerminalReader when the line editor is enabled and In is a
// terminal, and a StreamReader otherwise.
func New(opts Options) (Reader, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if !useLineEditor(opts.In, opts.LineEditor) {
		logger.Debug("using stream reader", "line_editor", opts.LineEditor)
		return NewStreamReader(opts.In, opts.Out), nil
	}

	logger.Debug("using terminal line editor", "history_file", opts.HistoryFile, "history_limit", opts.HistoryLimit)
	return NewTerminalReader(opts)
}

// NewStreamReader creates a StreamReader that writes prompts to out.
// A nil out discards prompts.
func NewStreamReader(in io.Reader, out io.Writer) *StreamReader {
	if out == nil {
		out = io.Discard
	}
	return &StreamReader{in: bufio.NewReader(in), out: out}
}

// ReadLine implements Reader.
func (r *StreamReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
		return line, nil
	}

	return strings.TrimSuffix(line, "\n"), nil
}

// Close implements Reader. The underlying source is owned by the caller.
func (r *StreamReader) Close() error { return nil }

// useLineEditor reports whether in should be driven by the line editor.
func useLineEditor(in io.Reader, enabled bool) bool {
	return enabled && IsTerminal(in)
}

// IsTerminal reports whether r is backed by a terminal file descriptor.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
