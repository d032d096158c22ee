// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for remote task operations.
// All Todoist API calls go through this interface.
// Commands never talk HTTP directly.
type Service interface {
	// ListTasks returns all active tasks, with pagination fully drained.
	// If projectID is non-empty, only tasks in that project are returned.
	ListTasks(ctx context.Context, projectID string) ([]Task, error)

	// ListProjects returns all projects, with pagination fully drained.
	ListProjects(ctx context.Context) ([]Project, error)

	// GetTask fetches a single task by ID.
	GetTask(ctx context.Context, taskID string) (Task, error)

	// AddTask creates a task and returns the created task as the server
	// stored it.
	AddTask(ctx context.Context, t NewTask) (Task, error)

	// UpdateTask applies a partial update to a task.
	// Zero-valued fields of u are left unchanged.
	UpdateTask(ctx context.Context, taskID string, u TaskUpdate) error

	// CompleteTask marks a task as completed.
	CompleteTask(ctx context.Context, taskID string) error

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, taskID string) error
}
