package domain

import "time"

// TaskStatus is the closed set of task states.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool { return s == TaskPending || s == TaskCompleted }

type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"` // owner, immutable after creation
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskPatch carries a partial update. Nil fields keep their stored value.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

// TaskPage is one page of List results. Exactly one pagination mode is in
// play per request: offset pages carry Page/LastPage/Total, cursor reads
// carry NextCursor.
type TaskPage struct {
	Tasks      []Task  `json:"tasks"`
	PerPage    int     `json:"per_page"`
	Page       int     `json:"page,omitempty"`
	LastPage   int     `json:"last_page,omitempty"`
	Total      int     `json:"total,omitempty"`
	NextCursor *string `json:"next_cursor,omitempty"`
}
