// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	CommandNotFoundId Id = iota + 1
	ChangeDirectoryFailedId
	ConfigLoadFailedId
	LineEditorFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue with the named glamour style ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("\n- " + string(link))
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found

kash looked for the program on your ` + "`$PATH`" + ` and did not find it.

## Things you can try
- Check the spelling; command names are case-sensitive
- Run a program outside ` + "`$PATH`" + ` with a path: ` + "`./build.sh`" + ` or ` + "`/usr/local/bin/tool`" + `
- Make sure the file has its executable bit set
- Type ` + "`help`" + ` to list the builtins`,
		docLinks: []HttpLink{"https://pubs.opengroup.org/onlinepubs/9799919799/utilities/V3_chap02.html#tag_19_09_01_01"},
	}

	changeDirectoryFailedIssue = &Issue{
		id: ChangeDirectoryFailedId,
		mdMsg: `
# Cannot change directory

` + "`cd`" + ` takes exactly one argument: the directory to move to.

## Things you can try
- Check that the directory exists and that you may enter it
- Paths are taken literally; ` + "`~`" + ` and ` + "`$HOME`" + ` are not expanded`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

The file passed with ` + "`--config`" + ` is missing, unreadable or does not match the schema.

## Things you can try
- Supported formats are CUE (` + "`.cue`" + `) and TOML (` + "`.toml`" + `)
- Known keys: ` + "`prompt`" + `, ` + "`line_editor`" + `, ` + "`ui`" + `, ` + "`log`" + `
- Run kash without ` + "`--config`" + ` to use the defaults`,
	}

	lineEditorFailedIssue = &Issue{
		id: LineEditorFailedId,
		mdMsg: `
# The line editor could not start

kash could not put your terminal into line editing mode.

## Things you can try
- Start kash with ` + "`--no-line-editor`" + ` to read plain lines
- Check the history file path in your configuration`,
	}

	issues = map[Id]*Issue{
		commandNotFoundIssue.Id():       commandNotFoundIssue,
		changeDirectoryFailedIssue.Id(): changeDirectoryFailedIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		lineEditorFailedIssue.Id():      lineEditorFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

// Get returns the catalog entry for id, or nil if id is not in the catalog.
func Get(id Id) *Issue {
	return issues[id]
}
