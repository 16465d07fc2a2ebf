// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/kashsh/kash/internal/builtin"
	"github.com/kashsh/kash/internal/lineread"
	"github.com/kashsh/kash/internal/token"
)

// DefaultPrompt is written before every read.
const DefaultPrompt = "kash> "

type (
	// Dependencies holds everything a Shell needs.
	Dependencies struct {
		Reader        lineread.Reader
		Builtins      *builtin.Registry
		Launcher      Launcher
		Stdout        io.Writer
		Stderr        io.Writer
		Logger        *log.Logger
		Prompt        string
		Verbose       bool
		MarkdownStyle string
	}

	// Shell is the interactive loop.
	Shell struct {
		reader     lineread.Reader
		dispatcher *Dispatcher
		prompt     string
		logger     *log.Logger
	}
)

// ErrNoReader is returned by New when Dependencies.Reader is nil.
var ErrNoReader = errors.New("shell: no line reader")

// New creates a Shell from deps.
func New(deps Dependencies) (*Shell, error) {
	if deps.Reader == nil {
		return nil, ErrNoReader
	}
	if deps.Prompt == "" {
		deps.Prompt = DefaultPrompt
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	return &Shell{
		reader: deps.Reader,
		dispatcher: NewDispatcher(DispatcherOptions{
			Builtins:      deps.Builtins,
			Launcher:      deps.Launcher,
			Stdout:        deps.Stdout,
			Stderr:        deps.Stderr,
			Logger:        deps.Logger,
			MarkdownStyle: deps.MarkdownStyle,
			Verbose:       deps.Verbose,
		}),
		prompt: deps.Prompt,
		logger: deps.Logger,
	}, nil
}

// Run loops until a builtin returns builtin.Terminate or input ends, both of
// which return nil. Any other read failure is returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		line, err := s.reader.ReadLine(s.prompt)
		if errors.Is(err, io.EOF) {
			s.logger.Debug("end of input")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command line: %w", err)
		}

		if s.dispatcher.Dispatch(ctx, token.Tokenize(line)) == builtin.Terminate {
			s.logger.Debug("terminated by builtin")
			return nil
		}
	}
}
