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
	Register(&ProjectsCmd{})
}

// ProjectsCmd implements the projects command.
type ProjectsCmd struct{}

func (c *ProjectsCmd) Name() string      { return "projects" }
func (c *ProjectsCmd) Aliases() []string { return []string{"proj"} }
func (c *ProjectsCmd) Synopsis() string  { return "List all projects" }
func (c *ProjectsCmd) Usage() string     { return "todoist projects" }
func (c *ProjectsCmd) NeedsAuth() bool   { return true }

func (c *ProjectsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ProjectsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	projects, err := svc.ListProjects(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "Error fetching projects: %v\n", err)
		return exitcode.BackendError
	}

	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found.")
		return exitcode.Success
	}

	output.FormatProjectTable(out, projects)
	return exitcode.Success
}
