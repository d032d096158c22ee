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
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
type UpdateCmd struct {
	content  string
	due      string
	priority int
}

// SetContent sets the new content (for testing).
func (c *UpdateCmd) SetContent(content string) { c.content = content }

// SetDue sets the new due string (for testing).
func (c *UpdateCmd) SetDue(due string) { c.due = due }

// SetPriority sets the new priority (for testing).
func (c *UpdateCmd) SetPriority(p int) { c.priority = p }

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return []string{"edit", "modify"} }
func (c *UpdateCmd) Synopsis() string  { return "Update an existing task" }
func (c *UpdateCmd) Usage() string {
	return "todoist update <task-id> [--content <str>] [--due <str>] [--priority <1-4>]"
}
func (c *UpdateCmd) NeedsAuth() bool { return true }

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.content, "content", "", "")
	fs.StringVar(&c.content, "c", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.due, "d", "", "")
	fs.IntVar(&c.priority, "priority", 0, "")
	fs.IntVar(&c.priority, "P", 0, "")
}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	taskID, code := singleTaskID(args, errOut)
	if code != exitcode.Success {
		return code
	}

	if c.priority != 0 && (c.priority < 1 || c.priority > 4) {
		fmt.Fprintf(errOut, "error: invalid priority: %d (must be 1-4)\n", c.priority)
		return exitcode.UserError
	}

	update := service.TaskUpdate{
		Content:   c.content,
		DueString: c.due,
		Priority:  c.priority,
	}

	// Validated before any remote call.
	if update.IsZero() {
		fmt.Fprintln(errOut, "Error: No updates specified. Use --content, --due, or --priority.")
		return exitcode.UserError
	}

	if err := svc.UpdateTask(ctx, taskID, update); err != nil {
		fmt.Fprintf(errOut, "Error updating task: %v\n", err)
		return exitcode.BackendError
	}

	fmt.Fprintf(out, "Task %s updated successfully.\n", taskID)
	return exitcode.Success
}
