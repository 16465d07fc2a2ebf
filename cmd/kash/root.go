// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/kashsh/kash/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	prompt       string
	configPath   string
	logLevel     string
	verbose      bool
	noLineEditor bool
}

// rootCommand is the kash command and the state its run leaves behind.
type rootCommand struct {
	cmd   *cobra.Command
	flags rootFlags
	// exit holds a failure runShell has already reported.
	exit *ExitError
}

func newRootCommand() *rootCommand {
	r := &rootCommand{}

	r.cmd = &cobra.Command{
		Use:   "kash",
		Short: "A minimal interactive command interpreter",
		Long: TitleStyle.Render("kash") + SubtitleStyle.Render(" - A minimal interactive command interpreter") + `

kash reads one line at a time, splits it on whitespace and either runs a
builtin or starts the named program and waits for it. There is no quoting,
no globbing, no variables, no pipes and no redirection.

` + SubtitleStyle.Render("Builtins:") + `
  ` + CmdStyle.Render("cd <path>") + `  change the working directory
  ` + CmdStyle.Render("exit") + `       leave the shell
  ` + CmdStyle.Render("help") + `       list the builtins

` + SubtitleStyle.Render("Examples:") + `
  kash                          Start an interactive session
  kash --prompt '$ '            Use a different prompt
  kash --config ~/.kash.cue     Load settings from a CUE or TOML file
  printf 'ls\n' | kash          Run commands from a pipe`,
		Args: cobra.NoArgs,
		RunE: r.run,
	}

	flags := r.cmd.Flags()
	flags.StringVar(&r.flags.prompt, "prompt", config.DefaultPrompt, "text written before each command line")
	flags.StringVar(&r.flags.configPath, "config", "", "configuration file (.cue or .toml); none is read by default")
	flags.StringVar(&r.flags.logLevel, "log-level", string(config.LogLevelWarn), "log level (debug, info, warn, error)")
	flags.BoolVarP(&r.flags.verbose, "verbose", "v", false, "enable verbose output and debug logging")
	flags.BoolVar(&r.flags.noLineEditor, "no-line-editor", false, "read plain lines even when stdin is a terminal")

	return r
}

// run keeps reported failures away from fang so they are not printed twice.
func (r *rootCommand) run(cmd *cobra.Command, _ []string) error {
	err := runShell(cmd.Context(), cmd, &r.flags)
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		r.exit = exitErr
		return nil
	}
	return err
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Main runs kash over the process arguments and returns its exit status.
func Main() int {
	root := newRootCommand()

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		root.cmd,
		fang.WithVersion(getVersionString()),
	); err != nil {
		return 1
	}
	if root.exit != nil {
		return int(root.exit.Code)
	}
	return 0
}

// Execute runs kash and exits the process. It is called by main.main().
func Execute() {
	os.Exit(Main())
}
