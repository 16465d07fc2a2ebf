// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kashsh/kash/internal/builtin"
	"github.com/kashsh/kash/internal/config"
	"github.com/kashsh/kash/internal/issue"
	"github.com/kashsh/kash/internal/lineread"
	"github.com/kashsh/kash/internal/runtime"
	"github.com/kashsh/kash/internal/shell"
)

// runShell loads configuration, wires the interpreter and runs it until exit
// or end of input.
func runShell(ctx context.Context, cmd *cobra.Command, flags *rootFlags) error {
	stdin, stdout, stderr := cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return startupFailure(cmd, err, flags.verbose, issue.ConfigLoadFailedId)
	}
	if err := applyFlags(cmd, flags, cfg); err != nil {
		return startupFailure(cmd, err, flags.verbose, 0)
	}

	logger := newLogger(stderr, cfg.Log.Level)
	if flags.configPath != "" {
		logger.Debug("configuration loaded", "path", flags.configPath)
	}

	interactive := lineread.IsTerminal(stdin)
	reader, err := lineread.New(lineread.Options{
		In:           stdin,
		Out:          stdout,
		Err:          stderr,
		LineEditor:   cfg.LineEditor.Enabled,
		HistoryFile:  cfg.LineEditor.HistoryFile,
		HistoryLimit: cfg.LineEditor.HistoryLimit,
		Logger:       logger,
	})
	if err != nil {
		err = issue.NewErrorContext().
			WithOperation("start line editor").
			WithResource(cfg.LineEditor.HistoryFile).
			WithSuggestion("Start kash with --no-line-editor").
			Wrap(err).
			BuildError()
		return startupFailure(cmd, err, cfg.UI.Verbose, issue.LineEditorFailedId)
	}
	defer func() {
		if cerr := reader.Close(); cerr != nil {
			logger.Debug("close line reader", "err", cerr)
		}
	}()

	if interactive {
		stop := discardInterrupts(logger)
		defer stop()
	}

	sh, err := shell.New(shell.Dependencies{
		Reader:   reader,
		Builtins: builtin.Default(),
		Launcher: &runtime.NativeRuntime{
			Stdin:  stdin,
			Stdout: stdout,
			Stderr: stderr,
			Logger: logger,
		},
		Stdout:        stdout,
		Stderr:        stderr,
		Logger:        logger,
		Prompt:        cfg.Prompt,
		Verbose:       cfg.UI.Verbose,
		MarkdownStyle: cfg.UI.ColorScheme.MarkdownStyle(interactive),
	})
	if err != nil {
		return startupFailure(cmd, err, cfg.UI.Verbose, 0)
	}

	if err := sh.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", builtin.Prefix, err)
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// applyFlags lays explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) error {
	if cmd.Flags().Changed("prompt") {
		cfg.Prompt = flags.prompt
	}
	if cmd.Flags().Changed("log-level") {
		level := config.LogLevel(flags.logLevel)
		if ok, errs := level.IsValid(); !ok {
			return issue.NewErrorContext().
				WithOperation("parse --log-level").
				WithSuggestion("Use one of: debug, info, warn, error").
				Wrap(errors.Join(errs...)).
				BuildError()
		}
		cfg.Log.Level = level
	}
	if flags.verbose {
		cfg.UI.Verbose = true
	}
	if cfg.UI.Verbose {
		cfg.Log.Level = config.LogLevelDebug
	}
	if flags.noLineEditor {
		cfg.LineEditor.Enabled = false
	}
	return nil
}

// newLogger returns a stderr logger at the given level. Unknown levels fall
// back to warn.
func newLogger(w io.Writer, level config.LogLevel) *log.Logger {
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: builtin.Prefix,
		Level:  lvl,
	})
}

// startupFailure reports err in the CLI style and returns an ExitError.
// A non-zero id also renders that catalog entry when verbose.
func startupFailure(cmd *cobra.Command, err error, verbose bool, id issue.Id) error {
	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, ErrorStyle.Render(builtin.Prefix+":")+" "+formatErrorForDisplay(err, verbose))
	if verbose && id != 0 {
		if out, rerr := issue.Get(id).Render(builtin.DefaultMarkdownStyle); rerr == nil {
			fmt.Fprint(stderr, out)
		}
	}
	return &ExitError{Code: 1, Err: err}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
