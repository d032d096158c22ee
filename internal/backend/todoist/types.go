package todoist

import "todoist/internal/service"

// Wire types for the Todoist REST API. Field names follow the API's
// snake_case JSON.

type taskResource struct {
	ID          string       `json:"id"`
	Content     string       `json:"content"`
	Description string       `json:"description"`
	Priority    int          `json:"priority"`
	Due         *dueResource `json:"due"`
	Labels      []string     `json:"labels"`
	ProjectID   string       `json:"project_id"`
	CreatedAt   string       `json:"created_at"`
}

type dueResource struct {
	String      string `json:"string"`
	Date        string `json:"date"`
	IsRecurring bool   `json:"is_recurring"`
}

type projectResource struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

type taskPage struct {
	Results    []taskResource `json:"results"`
	NextCursor *string        `json:"next_cursor"`
}

type projectPage struct {
	Results    []projectResource `json:"results"`
	NextCursor *string           `json:"next_cursor"`
}

type createTaskRequest struct {
	Content   string `json:"content"`
	Priority  int    `json:"priority"`
	DueString string `json:"due_string,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

type updateTaskRequest struct {
	Content   string `json:"content,omitempty"`
	DueString string `json:"due_string,omitempty"`
	Priority  int    `json:"priority,omitempty"`
}

// toTask converts a wire task to the domain type.
func toTask(t taskResource) service.Task {
	task := service.Task{
		ID:          t.ID,
		Content:     t.Content,
		Description: t.Description,
		Priority:    t.Priority,
		Labels:      t.Labels,
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt,
	}
	if t.Due != nil {
		task.Due = &service.Due{
			String:      t.Due.String,
			Date:        t.Due.Date,
			IsRecurring: t.Due.IsRecurring,
		}
	}
	return task
}

// toProject converts a wire project to the domain type.
// The optional parent reference resolves to an explicit field here, at
// parse time.
func toProject(p projectResource) service.Project {
	proj := service.Project{
		ID:   p.ID,
		Name: p.Name,
	}
	if p.ParentID != nil {
		proj.ParentID = *p.ParentID
	}
	return proj
}
