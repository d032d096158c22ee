// Package todoist implements the service.Service interface against the
// Todoist REST API.
package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"todoist/internal/config"
	"todoist/internal/logging"
	"todoist/internal/service"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.todoist.com/api/v1"

	// PageLimit is the number of items requested per page.
	PageLimit = 200

	// APITimeout is the timeout for a single API call.
	APITimeout = 5 * time.Second
)

// Client implements service.Service using the Todoist REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a new Todoist client.
// The API key is sent as a bearer token on every request.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey})
	httpClient := oauth2.NewClient(ctx, src)

	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(base, "/"),
		logger:     logging.New(cfg.Debug),
	}, nil
}

// ListTasks returns all active tasks, draining cursor pagination.
func (c *Client) ListTasks(ctx context.Context, projectID string) ([]service.Task, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(PageLimit))
	if projectID != "" {
		query.Set("project_id", projectID)
	}

	var all []service.Task
	for {
		var page taskPage
		if err := c.do(ctx, http.MethodGet, "/tasks", query, nil, &page); err != nil {
			return nil, err
		}
		for _, t := range page.Results {
			all = append(all, toTask(t))
		}
		if page.NextCursor == nil || *page.NextCursor == "" {
			return all, nil
		}
		query.Set("cursor", *page.NextCursor)
	}
}

// ListProjects returns all projects, draining cursor pagination.
func (c *Client) ListProjects(ctx context.Context) ([]service.Project, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(PageLimit))

	var all []service.Project
	for {
		var page projectPage
		if err := c.do(ctx, http.MethodGet, "/projects", query, nil, &page); err != nil {
			return nil, err
		}
		for _, p := range page.Results {
			all = append(all, toProject(p))
		}
		if page.NextCursor == nil || *page.NextCursor == "" {
			return all, nil
		}
		query.Set("cursor", *page.NextCursor)
	}
}

// GetTask fetches a single task by ID.
func (c *Client) GetTask(ctx context.Context, taskID string) (service.Task, error) {
	var t taskResource
	if err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(taskID), nil, nil, &t); err != nil {
		return service.Task{}, err
	}
	return toTask(t), nil
}

// AddTask creates a task and returns it as stored by the server.
func (c *Client) AddTask(ctx context.Context, t service.NewTask) (service.Task, error) {
	body := createTaskRequest{
		Content:   t.Content,
		Priority:  t.Priority,
		DueString: t.DueString,
		ProjectID: t.ProjectID,
	}
	var created taskResource
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, body, &created); err != nil {
		return service.Task{}, err
	}
	return toTask(created), nil
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, u service.TaskUpdate) error {
	body := updateTaskRequest{
		Content:   u.Content,
		DueString: u.DueString,
		Priority:  u.Priority,
	}
	return c.do(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID), nil, body, nil)
}

// CompleteTask marks a task as completed.
func (c *Client) CompleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID)+"/close", nil, nil, nil)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(taskID), nil, nil, nil)
}

// do issues a single API call. Request bodies are JSON; a non-nil out is
// decoded from the response body. Mutating calls carry an idempotency
// request ID.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}

	op := method + " " + path
	c.logger.Debug("api request", logging.Operation(op))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = wrapError(err)
		c.logger.Debug("api request failed", logging.Operation(op), logging.Error(err))
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("api response", logging.Operation(op), logging.Status(resp.Status))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// statusError maps a non-2xx response to a user-facing error.
// Boolean-failure responses and HTTP errors are one failure kind here.
func statusError(method, path string, status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("invalid or revoked API key (check %s)", config.APIKeyEnv)
	case http.StatusNotFound:
		return errors.New("not found")
	default:
		return fmt.Errorf("%s %s: HTTP %d", method, path, status)
	}
}

// wrapError maps transport errors to user-facing messages.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("request timed out")
	}
	return err
}
