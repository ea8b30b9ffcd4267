// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	NotProvisionedId Id = iota + 1
	InterpreterNotFoundId
	CommandNotFoundId
	ConfigLoadFailedId
	ManifestDriftId
	PlaceholderSeedId
)

type MarkdownMsg string

// Issue is a known failure condition with rendered remediation guidance.
type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue's guidance as styled terminal output.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	notProvisionedIssue = &Issue{
		id: NotProvisionedId,
		mdMsg: `
# Environment not provisioned!

No virtual environment was found at the workspace's .venv directory,
so there is nothing to forward your command into.

## Things you can try:
- Provision the environment first:
~~~
$ anyproj setup
~~~

- If you expected an existing environment, check you are inside the
  right workspace:
~~~
$ anyproj status
~~~`,
	}

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# Python interpreter not found!

Provisioning needs a host Python interpreter to create the virtual
environment, and none was found.

## Things you can try:
- Install Python 3 and make sure it is on PATH
- Point anyproj at a specific interpreter in config.json:
~~~json
{
  "python": { "interpreter": "/usr/bin/python3.12" }
}
~~~`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

The command you asked to forward was not found in the environment's
bin directory or on PATH.

## Things you can try:
- Check for typos in the command name
- Install the tool into the environment:
~~~
$ anyproj run pip install <tool>
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the workspace's config.json.

## Things you can try:
- Check the JSON syntax of config.json at the workspace root
- Regenerate the default configuration:
~~~
$ anyproj bootstrap
~~~

## Example configuration:
~~~json
{
  "project": "anyproject",
  "version": "0.1.0",
  "python": { "interpreter": "python3" }
}
~~~`,
	}

	manifestDriftIssue = &Issue{
		id: ManifestDriftId,
		mdMsg: `
# Workspace files drifted from the manifest!

One or more files changed, disappeared, or appeared since the integrity
manifest was last written.

## Things you can try:
- Review the changed/missing/new files listed above
- Accept the current state and rewrite the manifest:
~~~
$ anyproj integrity --update
~~~`,
	}

	placeholderSeedIssue = &Issue{
		id: PlaceholderSeedId,
		mdMsg: `
# Seed files still contain placeholders!

PROGRAM_FEATURES.json or RESEARCH_GUIDELINES.md looks like an unedited
template, so init refuses to seed planning data from it.

## Things you can try:
- Fill in PROGRAM_FEATURES.json with real project features
- Replace the stub content in RESEARCH_GUIDELINES.md
- Or proceed anyway:
~~~
$ anyproj init --allow-placeholders
~~~`,
	}

	issues = map[Id]*Issue{
		notProvisionedIssue.Id():      notProvisionedIssue,
		interpreterNotFoundIssue.Id(): interpreterNotFoundIssue,
		commandNotFoundIssue.Id():     commandNotFoundIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		manifestDriftIssue.Id():       manifestDriftIssue,
		placeholderSeedIssue.Id():     placeholderSeedIssue,
	}
)

// Values returns all registered issues in ascending Id order.
func Values() []*Issue {
	all := maps.Values(issues)
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.Id()) - int(b.Id()) })
	return all
}

func Get(id Id) *Issue {
	return issues[id]
}
