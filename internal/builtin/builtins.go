// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/kashsh/kash/internal/issue"
)

// DefaultMarkdownStyle is used when Env.MarkdownStyle is empty.
const DefaultMarkdownStyle = "notty"

var renderMarkdown = glamour.Render

// exit ignores its arguments.
func exit(_ context.Context, env *Env, args []string) Status {
	env.logger().Debug("exit requested", "args", len(args)-1)
	return Terminate
}

func changeDirectory(_ context.Context, env *Env, args []string) Status {
	switch {
	case len(args) < 2:
		env.Reportf("expected argument to %q", "cd")
	case len(args) > 2:
		env.Reportf("cd: too many arguments")
	default:
		if err := os.Chdir(args[1]); err != nil {
			env.Report(err)
			env.Explain(issue.ChangeDirectoryFailedId)
			return Continue
		}
		env.logger().Debug("changed working directory", "dir", args[1])
	}
	return Continue
}

func help(_ context.Context, env *Env, _ []string) Status {
	md := helpMarkdown(env.Registry)

	style := env.markdownStyle()
	out, err := renderMarkdown(md, style)
	if err != nil {
		env.logger().Debug("help rendering failed, printing raw markdown", "style", style, "error", err)
		out = md
	}
	_, _ = io.WriteString(env.stdout(), out)
	return Continue
}

func helpMarkdown(r *Registry) string {
	var sb strings.Builder
	sb.WriteString("# kash\n\n")
	sb.WriteString("Type a program name and its arguments, then press enter.\n\n")
	sb.WriteString("## Builtins\n\n")
	if r != nil {
		for _, e := range r.Entries() {
			fmt.Fprintf(&sb, "- `%s`: %s\n", e.Usage, e.Summary)
		}
	}
	sb.WriteString("\nAnything else runs as an external program found on `$PATH`.\n")
	return sb.String()
}
