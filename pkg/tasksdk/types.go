package tasksdk

import "time"

// ErrorResponse is the standard error body: a single human-readable message.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries per-field validation messages, returned
// with status 422.
type ValidationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

// MessageResponse is a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupRequest registers a new client account. Accounts start pending and
// cannot log in until an admin issues an invite token.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user account. Password material is
// never included.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest authenticates a user. InviteToken is required only for the
// first login of a pending account.
type LoginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	InviteToken string `json:"invite_token,omitempty"`
}

// SessionResponse is returned on successful login.
type SessionResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// InviteRequest asks for an invite token to be issued to a pending client,
// identified by email. Admin only.
type InviteRequest struct {
	Email string `json:"email"`
}

// InviteResponse carries the raw invite token. This is the only time the
// token is visible; the server stores a fingerprint.
type InviteResponse struct {
	InviteToken string    `json:"invite_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// TaskCreateRequest creates a task owned by the caller. Status defaults to
// "pending" when omitted.
type TaskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// TaskUpdateRequest partially updates a task. Omitted fields are left
// unchanged.
type TaskUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// TaskResponse is a single task.
type TaskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskPageResponse is one page of tasks. Page, LastPage and Total are set in
// page-number mode; NextCursor is set in cursor mode when more rows remain.
type TaskPageResponse struct {
	Data       []TaskResponse `json:"data"`
	PerPage    int            `json:"per_page"`
	Page       int            `json:"page,omitempty"`
	LastPage   int            `json:"last_page,omitempty"`
	Total      int            `json:"total,omitempty"`
	NextCursor *string        `json:"next_cursor,omitempty"`
}

// DirectoryName is a directory entry's name parts.
type DirectoryName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// DirectoryUserResponse is one entry from the external user directory.
type DirectoryUserResponse struct {
	Gender string        `json:"gender"`
	Name   DirectoryName `json:"name"`
	Email  string        `json:"email"`
}

// DirectoryResponse is one page of the external user directory.
type DirectoryResponse struct {
	Data     []DirectoryUserResponse `json:"data"`
	Page     int                     `json:"page"`
	PerPage  int                     `json:"per_page"`
	Total    int                     `json:"total"`
	LastPage int                     `json:"last_page"`
}

// HealthChecks reports the status of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is the body of the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
