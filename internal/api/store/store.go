package store

import (
	"context"
	"errors"

	"github.com/taskdesk/taskdesk/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a Tx escape hatch for the multi-step operations that must be
// atomic (invite redemption).
type Store interface {
	Users() Users
	Invites() Invites
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByEmail is used during login and invite issuance.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUserStatus mutates the status and bumps updated_at.
	UpdateUserStatus(ctx context.Context, userID string, status domain.UserStatus) error

	// HasAdmin reports whether any admin account exists.
	HasAdmin(ctx context.Context) (bool, error)
}

type Invites interface {
	// UpsertInvite stores a token for a user, replacing any existing record
	// for that user in a single statement. At most one live token per user.
	UpsertInvite(ctx context.Context, inv domain.InviteToken) error

	// ConsumeInvite deletes the record matching (userID, tokenHash) with an
	// expiry strictly after now, and reports whether a row was removed.
	// The conditional delete is what makes concurrent redemption of the same
	// token yield exactly one winner.
	ConsumeInvite(ctx context.Context, userID, tokenHash string) (bool, error)

	// GetInviteByUserID returns the live record for a user, expired or not.
	GetInviteByUserID(ctx context.Context, userID string) (domain.InviteToken, error)
}

type Tasks interface {
	// CreateTask inserts a new task.
	CreateTask(ctx context.Context, t domain.Task) error

	// GetTaskByID returns a task by id regardless of owner; authorization is
	// the service's concern.
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// UpdateTask overwrites title, description and status, bumping updated_at.
	UpdateTask(ctx context.Context, t domain.Task) error

	// DeleteTask removes the row and reports whether it existed.
	DeleteTask(ctx context.Context, id string) (bool, error)

	// ListTasks returns tasks matching the scope in stable id order (ULIDs
	// sort by creation time). ownerUserID and status are optional narrowing;
	// afterID is an exclusive cursor; limit <= 0 means no limit.
	ListTasks(ctx context.Context, ownerUserID string, status *domain.TaskStatus, afterID string, limit, offset int) ([]domain.Task, error)

	// CountTasks counts the rows ListTasks would return without cursor/limit.
	CountTasks(ctx context.Context, ownerUserID string, status *domain.TaskStatus) (int, error)
}
