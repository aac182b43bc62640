package tasksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a client for the TaskDesk API. The zero value is not usable;
// construct one with NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates an unauthenticated client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken stores a bearer token to be sent on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Signup registers a new client account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPost, "/v1/signup", req, &out)
	return out, err
}

// Login authenticates and, on success, stores the returned access token on
// the client for subsequent calls.
func (c *Client) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	var out SessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/login", req, &out); err != nil {
		return SessionResponse{}, err
	}
	c.token = out.AccessToken
	return out, nil
}

// IssueInvite asks for an invite token for a pending client. Admin only.
func (c *Client) IssueInvite(ctx context.Context, email string) (InviteResponse, error) {
	var out InviteResponse
	err := c.do(ctx, http.MethodPost, "/v1/admin/invite", InviteRequest{Email: email}, &out)
	return out, err
}

// CreateTask creates a task owned by the authenticated user.
func (c *Client) CreateTask(ctx context.Context, req TaskCreateRequest) (TaskResponse, error) {
	var out TaskResponse
	err := c.do(ctx, http.MethodPost, "/v1/tasks", req, &out)
	return out, err
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, id string) (TaskResponse, error) {
	var out TaskResponse
	err := c.do(ctx, http.MethodGet, "/v1/tasks/"+url.PathEscape(id), nil, &out)
	return out, err
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, id string, req TaskUpdateRequest) (TaskResponse, error) {
	var out TaskResponse
	err := c.do(ctx, http.MethodPut, "/v1/tasks/"+url.PathEscape(id), req, &out)
	return out, err
}

// DeleteTask permanently removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/tasks/"+url.PathEscape(id), nil, nil)
}

// ListTasksOptions filters and pages the task listing. Page and Cursor are
// mutually exclusive; Page wins when both are set.
type ListTasksOptions struct {
	Status      string
	OwnerUserID string // admin only; ignored for regular users
	Page        int
	Cursor      string
}

// ListTasks lists the authenticated user's tasks (or, for admins, optionally
// another user's).
func (c *Client) ListTasks(ctx context.Context, opts ListTasksOptions) (TaskPageResponse, error) {
	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.OwnerUserID != "" {
		q.Set("user_id", opts.OwnerUserID)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Cursor != "" {
		q.Set("cursor", opts.Cursor)
	}

	path := "/v1/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out TaskPageResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Directory fetches one page of the external user directory.
func (c *Client) Directory(ctx context.Context, gender, search string, page int) (DirectoryResponse, error) {
	q := url.Values{}
	if gender != "" {
		q.Set("gender", gender)
	}
	if search != "" {
		q.Set("search", search)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	path := "/v1/directory"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out DirectoryResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// do sends one JSON request and decodes a JSON response into out (when out
// is non-nil). Non-2xx statuses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
