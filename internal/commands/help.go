package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todoist help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText)
	return exitcode.Success
}

// HelpText is the usage screen, also printed when the CLI is invoked with
// no arguments.
const HelpText = `Usage:
  todoist tasks [--project <name>]     List active tasks
  todoist projects                     List all projects
  todoist add <content...> [--due <str>] [--priority <1-4>] [--project-id <id>]
  todoist complete <task-id>           Complete a task
  todoist delete <task-id>             Delete a task
  todoist get <task-id>                Show task details
  todoist update <task-id> [--content <str>] [--due <str>] [--priority <1-4>]
  todoist help
  todoist version

Aliases:
  tasks: ls, list
  projects: proj
  add: new, create
  complete: done, close, finish
  delete: rm, remove
  get: show, view
  update: edit, modify

Common flags:
  --debug          Print debug logs to stderr

Priority:
  1=P4 (normal) ... 4=P1 (high); the API code and display label are inverted.

Environment:
  TODOIST_API_KEY  Required. Your Todoist API key.
`
