// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	MissingProgramId Id = iota + 1
	LaunchFileNotFoundId
	LaunchFileParseErrorId
	ConfigurationNotFoundId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation pages for this issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the message with a "See also" section listing the links.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if len(i.docLinks) == 0 && len(i.extLinks) == 0 {
		return sb.String()
	}
	sb.WriteString("\n\n## See also\n")
	for _, link := range append(i.DocLinks(), i.extLinks...) {
		sb.WriteString("- <" + string(link) + ">\n")
	}
	return sb.String()
}

// Render renders the issue with a glamour style ("auto", "dark", "light",
// "notty" or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	missingProgramIssue = &Issue{
		id: MissingProgramId,
		mdMsg: `
# No program specified in launch configuration!

The debug session cannot start because the configuration has no ` + "`program`" + ` entry,
or the entry is empty.

## Things you can try:
- Add the Mylo source file to debug to your ` + "`launch.json`" + `:
~~~json
{
  "type": "mylo",
  "request": "launch",
  "name": "Debug current file",
  "program": "${file}"
}
~~~

- When the file holds several configurations, pick one explicitly:
~~~
$ mylo-dap resolve --config .vscode/launch.json --name "Debug current file"
~~~`,
		docLinks: []HttpLink{"https://code.visualstudio.com/docs/editor/debugging#_launch-configurations"},
	}

	launchFileNotFoundIssue = &Issue{
		id: LaunchFileNotFoundId,
		mdMsg: `
# Launch configuration file not found!

The file passed with ` + "`--config`" + ` does not exist or cannot be read.

## Things you can try:
- Check the path, relative paths are resolved from the current directory
- Pipe the configuration on stdin instead:
~~~
$ echo '{"program": "main.mylo"}' | mylo-dap resolve
~~~`,
	}

	launchFileParseErrorIssue = &Issue{
		id: LaunchFileParseErrorId,
		mdMsg: `
# Failed to parse launch configuration!

The configuration must be JSON (comments and trailing commas are accepted) or CUE.

## Common issues:
- ` + "`program`" + ` and ` + "`cwd`" + ` must be strings
- ` + "`env`" + ` must map names to strings, numbers or booleans
- ` + "`configurations`" + ` must be a list of objects`,
	}

	configurationNotFoundIssue = &Issue{
		id: ConfigurationNotFoundId,
		mdMsg: `
# Launch configuration not found!

No configuration with the requested name and ` + "`\"type\": \"mylo\"`" + ` exists in the file.

## Things you can try:
- Check the spelling of ` + "`--name`" + `, names are case-sensitive
- Omit ` + "`--name`" + ` to use the first Mylo configuration`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load mylo-dap configuration!

## Things you can try:
- Print the effective configuration and its location:
~~~
$ mylo-dap config show
$ mylo-dap config path
~~~

- Regenerate a default file:
~~~
$ mylo-dap config init
~~~

- Check ` + "`MYLO_DAP_*`" + ` environment variables, they override the file`,
	}

	issues = map[Id]*Issue{
		missingProgramIssue.Id():        missingProgramIssue,
		launchFileNotFoundIssue.Id():    launchFileNotFoundIssue,
		launchFileParseErrorIssue.Id():  launchFileParseErrorIssue,
		configurationNotFoundIssue.Id(): configurationNotFoundIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	values := maps.Values(issues)
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
