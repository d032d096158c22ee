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
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm", "remove"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) Usage() string     { return "todoist delete <task-id>" }
func (c *DeleteCmd) NeedsAuth() bool   { return true }

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	taskID, code := singleTaskID(args, errOut)
	if code != exitcode.Success {
		return code
	}

	if err := svc.DeleteTask(ctx, taskID); err != nil {
		fmt.Fprintf(errOut, "Error deleting task: %v\n", err)
		return exitcode.BackendError
	}

	fmt.Fprintf(out, "Task %s deleted.\n", taskID)
	return exitcode.Success
}
