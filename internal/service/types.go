// Package service defines the backend-agnostic interface for task operations.
package service

// Due describes a task due date.
type Due struct {
	// String is the human-readable due descriptor (e.g. "tomorrow at 5pm").
	String string

	// Date is the due date in YYYY-MM-DD form.
	Date string

	// IsRecurring reports whether the due date repeats.
	IsRecurring bool
}

// Task represents a single task item.
// Priority is the API code 1-4 where 4 is the most urgent; the display
// label inverts this (4 renders as "P1").
type Task struct {
	ID          string
	Content     string
	Description string
	Priority    int
	Due         *Due
	Labels      []string
	ProjectID   string
	CreatedAt   string
}

// Project represents a project that groups tasks.
// ParentID is empty for top-level projects.
type Project struct {
	ID       string
	Name     string
	ParentID string
}

// NewTask holds the fields for creating a task.
type NewTask struct {
	Content   string
	Priority  int
	DueString string
	ProjectID string
}

// TaskUpdate holds the fields for a partial task update.
// Zero values mean "leave unchanged".
type TaskUpdate struct {
	Content   string
	DueString string
	Priority  int
}

// IsZero reports whether the update changes nothing.
func (u TaskUpdate) IsZero() bool {
	return u.Content == "" && u.DueString == "" && u.Priority == 0
}
