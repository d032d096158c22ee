// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"todoist/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu       sync.RWMutex
	tasks    []service.Task
	projects []service.Project

	// Calls records method names in invocation order, for asserting that
	// validation failures never reach the remote.
	Calls []string

	// Error injection for testing
	ListTasksErr    error
	ListProjectsErr error
	GetTaskErr      error
	AddTaskErr      error
	UpdateTaskErr   error
	CompleteTaskErr error
	DeleteTaskErr   error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddProject seeds a project. parentID may be empty for top-level projects.
func (f *FakeService) AddProject(id, name, parentID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = append(f.projects, service.Project{ID: id, Name: name, ParentID: parentID})
}

// SeedTask seeds a task directly.
func (f *FakeService) SeedTask(t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, t)
}

// Task returns a seeded or created task by ID, for assertions.
func (f *FakeService) Task(id string) (service.Task, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

func (f *FakeService) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, method)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, projectID string) ([]service.Task, error) {
	f.record("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []service.Task
	for _, t := range f.tasks {
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

// ListProjects implements service.Service.
func (f *FakeService) ListProjects(ctx context.Context) ([]service.Project, error) {
	f.record("ListProjects")
	if f.ListProjectsErr != nil {
		return nil, f.ListProjectsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]service.Project, len(f.projects))
	copy(result, f.projects)
	return result, nil
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, taskID string) (service.Task, error) {
	f.record("GetTask")
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}
	t, ok := f.Task(taskID)
	if !ok {
		return service.Task{}, ErrNotFound
	}
	return t, nil
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, t service.NewTask) (service.Task, error) {
	f.record("AddTask")
	if f.AddTaskErr != nil {
		return service.Task{}, f.AddTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	task := service.Task{
		ID:        fmt.Sprintf("task-%d", len(f.tasks)+1),
		Content:   t.Content,
		Priority:  t.Priority,
		ProjectID: t.ProjectID,
		CreatedAt: "2024-01-01T00:00:00Z",
	}
	if t.DueString != "" {
		task.Due = &service.Due{String: t.DueString}
	}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, taskID string, u service.TaskUpdate) error {
	f.record("UpdateTask")
	if f.UpdateTaskErr != nil {
		return f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID != taskID {
			continue
		}
		if u.Content != "" {
			f.tasks[i].Content = u.Content
		}
		if u.DueString != "" {
			f.tasks[i].Due = &service.Due{String: u.DueString}
		}
		if u.Priority != 0 {
			f.tasks[i].Priority = u.Priority
		}
		return nil
	}
	return ErrNotFound
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, taskID string) error {
	f.record("CompleteTask")
	if f.CompleteTaskErr != nil {
		return f.CompleteTaskErr
	}
	return f.remove(taskID)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, taskID string) error {
	f.record("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	return f.remove(taskID)
}

// remove drops a task from the active set. Completed and deleted tasks are
// indistinguishable to ListTasks, which only serves active tasks.
func (f *FakeService) remove(taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == taskID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// CalledString returns the recorded calls joined for simple assertions.
func (f *FakeService) CalledString() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return strings.Join(f.Calls, ",")
}
