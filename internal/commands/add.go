package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/output"
	"todoist/internal/service"
)

func init() {
	Register(&AddCmd{priority: 1})
}

// AddCmd implements the add command.
type AddCmd struct {
	due       string
	priority  int
	projectID string
}

// SetDue sets the due string (for testing).
func (c *AddCmd) SetDue(due string) { c.due = due }

// SetPriority sets the priority (for testing).
func (c *AddCmd) SetPriority(p int) { c.priority = p }

// SetProjectID sets the project ID (for testing).
func (c *AddCmd) SetProjectID(id string) { c.projectID = id }

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"new", "create"} }
func (c *AddCmd) Synopsis() string  { return "Add a new task" }
func (c *AddCmd) Usage() string {
	return "todoist add <content...> [--due <str>] [--priority <1-4>] [--project-id <id>]"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.due, "d", "", "")
	fs.IntVar(&c.priority, "priority", 1, "")
	fs.IntVar(&c.priority, "P", 1, "")
	fs.StringVar(&c.projectID, "project-id", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	content := strings.TrimSpace(strings.Join(args, " "))
	if content == "" {
		fmt.Fprintln(errOut, "error: content required")
		return exitcode.UserError
	}

	if c.priority < 1 || c.priority > 4 {
		fmt.Fprintf(errOut, "error: invalid priority: %d (must be 1-4)\n", c.priority)
		return exitcode.UserError
	}

	task, err := svc.AddTask(ctx, service.NewTask{
		Content:   content,
		Priority:  c.priority,
		DueString: c.due,
		ProjectID: c.projectID,
	})
	if err != nil {
		fmt.Fprintf(errOut, "Error creating task: %v\n", err)
		return exitcode.BackendError
	}

	output.FormatCreatedTask(out, task)
	return exitcode.Success
}
