// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todoist/internal/service"
)

// Column widths for the task table.
const (
	IDWidth       = 20
	PriorityWidth = 12
	DueWidth      = 15
)

// FormatPriority maps an API priority code to its display label.
// The API stores 4 for the most urgent task, which renders as "P1";
// this inversion is deliberate and must not be remapped.
func FormatPriority(priority int) string {
	switch priority {
	case 4:
		return "P1 (High)"
	case 3:
		return "P2"
	case 2:
		return "P3"
	case 1:
		return "P4 (Normal)"
	default:
		return "P4"
	}
}

// FormatTaskRow formats a single task table row.
// Columns are left-justified at fixed widths; content is never truncated.
func FormatTaskRow(w io.Writer, id, priority, due, content string) {
	fmt.Fprintf(w, "%-*s | %-*s | %-*s | %s\n", IDWidth, id, PriorityWidth, priority, DueWidth, due, content)
}

// FormatTaskTable writes the task table with header and separator rule.
func FormatTaskTable(w io.Writer, tasks []service.Task) {
	FormatTaskRow(w, "ID", "Priority", "Due", "Content")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, t := range tasks {
		FormatTaskRow(w, t.ID, FormatPriority(t.Priority), dueOrDefault(t.Due, "No Date"), t.Content)
	}
}

// FormatProjectTable writes the project table with header and separator rule.
// Child projects (non-empty ParentID) are indented under their parent.
func FormatProjectTable(w io.Writer, projects []service.Project) {
	fmt.Fprintf(w, "%-*s | %s\n", IDWidth, "ID", "Name")
	fmt.Fprintln(w, strings.Repeat("-", 45))
	for _, p := range projects {
		indent := ""
		if p.ParentID != "" {
			indent = "  "
		}
		fmt.Fprintf(w, "%-*s | %s%s\n", IDWidth, p.ID, indent, p.Name)
	}
}

// FormatCreatedTask echoes the fields of a freshly created task.
func FormatCreatedTask(w io.Writer, t service.Task) {
	fmt.Fprintln(w, "Task created successfully!")
	fmt.Fprintf(w, "  ID: %s\n", t.ID)
	fmt.Fprintf(w, "  Content: %s\n", t.Content)
	if t.Due != nil {
		fmt.Fprintf(w, "  Due: %s\n", t.Due.String)
	}
	fmt.Fprintf(w, "  Priority: %s\n", FormatPriority(t.Priority))
}

// FormatTaskDetail writes the multi-line detail view for a single task.
// Description and Labels lines appear only when present.
func FormatTaskDetail(w io.Writer, t service.Task) {
	fmt.Fprintln(w, "Task Details")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "  ID:          %s\n", t.ID)
	fmt.Fprintf(w, "  Content:     %s\n", t.Content)
	fmt.Fprintf(w, "  Priority:    %s\n", FormatPriority(t.Priority))
	fmt.Fprintf(w, "  Due:         %s\n", dueOrDefault(t.Due, "No date"))
	fmt.Fprintf(w, "  Created:     %s\n", t.CreatedAt)
	if t.Description != "" {
		fmt.Fprintf(w, "  Description: %s\n", t.Description)
	}
	if len(t.Labels) > 0 {
		fmt.Fprintf(w, "  Labels:      %s\n", strings.Join(t.Labels, ", "))
	}
}

func dueOrDefault(due *service.Due, fallback string) string {
	if due == nil {
		return fallback
	}
	return due.String
}
