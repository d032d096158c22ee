package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/output"
	"todoist/internal/service"
)

func init() {
	Register(&GetCmd{})
}

// GetCmd implements the get command.
type GetCmd struct{}

func (c *GetCmd) Name() string      { return "get" }
func (c *GetCmd) Aliases() []string { return []string{"show", "view"} }
func (c *GetCmd) Synopsis() string  { return "Show task details" }
func (c *GetCmd) Usage() string     { return "todoist get <task-id>" }
func (c *GetCmd) NeedsAuth() bool   { return true }

func (c *GetCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *GetCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	taskID, code := singleTaskID(args, errOut)
	if code != exitcode.Success {
		return code
	}

	task, err := svc.GetTask(ctx, taskID)
	if err != nil {
		fmt.Fprintf(errOut, "Error fetching task: %v\n", err)
		return exitcode.BackendError
	}

	output.FormatTaskDetail(out, task)
	return exitcode.Success
}
