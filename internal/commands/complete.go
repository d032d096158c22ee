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
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done", "close", "finish"} }
func (c *CompleteCmd) Synopsis() string  { return "Complete a task" }
func (c *CompleteCmd) Usage() string     { return "todoist complete <task-id>" }
func (c *CompleteCmd) NeedsAuth() bool   { return true }

func (c *CompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	taskID, code := singleTaskID(args, errOut)
	if code != exitcode.Success {
		return code
	}

	if err := svc.CompleteTask(ctx, taskID); err != nil {
		fmt.Fprintf(errOut, "Error completing task: %v\n", err)
		return exitcode.BackendError
	}

	fmt.Fprintf(out, "Task %s marked as completed.\n", taskID)
	return exitcode.Success
}

// singleTaskID extracts the required task-ID positional argument.
func singleTaskID(args []string, errOut io.Writer) (string, int) {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintln(errOut, "error: task id required")
		return "", exitcode.UserError
	}
	return args[0], exitcode.Success
}
