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
	Register(&TasksCmd{})
}

// TasksCmd implements the tasks command.
type TasksCmd struct {
	project string
}

// SetProject sets the project name filter (for testing).
func (c *TasksCmd) SetProject(name string) {
	c.project = name
}

func (c *TasksCmd) Name() string      { return "tasks" }
func (c *TasksCmd) Aliases() []string { return []string{"ls", "list"} }
func (c *TasksCmd) Synopsis() string  { return "List active tasks" }
func (c *TasksCmd) Usage() string     { return "todoist tasks [--project <name>]" }
func (c *TasksCmd) NeedsAuth() bool   { return true }

func (c *TasksCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.project, "project", "", "")
	fs.StringVar(&c.project, "p", "", "")
}

func (c *TasksCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	projectID := ""
	if c.project != "" {
		id, code := resolveProjectID(ctx, svc, c.project, errOut)
		if code != exitcode.Success {
			return code
		}
		projectID = id
	}

	tasks, err := svc.ListTasks(ctx, projectID)
	if err != nil {
		fmt.Fprintf(errOut, "Error fetching tasks: %v\n", err)
		return exitcode.BackendError
	}

	if len(tasks) == 0 {
		fmt.Fprintln(out, "No active tasks found.")
		return exitcode.Success
	}

	output.FormatTaskTable(out, tasks)
	return exitcode.Success
}

// resolveProjectID finds a project ID by case-insensitive exact name match.
// A name that matches nothing is a soft miss: a warning is printed and the
// filter is dropped rather than failing the listing.
func resolveProjectID(ctx context.Context, svc service.Service, name string, errOut io.Writer) (string, int) {
	projects, err := svc.ListProjects(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "Error fetching tasks: %v\n", err)
		return "", exitcode.BackendError
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, name) {
			return p.ID, exitcode.Success
		}
	}

	fmt.Fprintf(errOut, "Warning: Project '%s' not found. Showing all tasks.\n", name)
	return "", exitcode.Success
}
