package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taskdesk/taskdesk/internal/api/domain"
	"github.com/taskdesk/taskdesk/internal/api/store"
	"github.com/taskdesk/taskdesk/pkg/idx"
	"github.com/taskdesk/taskdesk/pkg/slogx"
)

// ErrTaskNotFound covers both "no such task" and "not yours". It is a single
// undifferentiated value built the same way for either condition, so a caller
// can't tell whether another user's task exists.
var ErrTaskNotFound = errors.New("task not found or not permitted")

const (
	maxTitleLength = 255

	// TasksPerPage is the page size for both pagination modes.
	TasksPerPage = 5
)

// TaskService owns task CRUD with ownership-scoped access: a task is visible
// and mutable only to its owner, or to any admin. The caller identity comes
// in explicitly with every call.
type TaskService struct {
	Store store.Store
}

// Create stores a new task. The owner is always the caller; there is no way
// to create a task on someone else's behalf.
func (s *TaskService) Create(ctx context.Context, caller domain.Caller, title, description string, status domain.TaskStatus) (domain.Task, error) {
	log := slogx.FromContext(ctx)

	fe := fieldErrors{}
	validateTitle(fe, title)
	validateStatus(fe, status)
	if err := fe.err(); err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          idx.New().String(),
		UserID:      caller.UserID,
		Title:       title,
		Description: description,
		Status:      status,
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		log.Error("failed to create task", slog.Any("error", err))
		return domain.Task{}, err
	}

	// Re-read for the store-assigned timestamps.
	return s.Store.Tasks().GetTaskByID(ctx, task.ID)
}

// Get returns a task if the caller may see it.
func (s *TaskService) Get(ctx context.Context, caller domain.Caller, taskID string) (domain.Task, error) {
	return s.fetchAuthorized(ctx, caller, taskID)
}

// Update applies a partial update: nil patch fields keep their stored value,
// supplied ones are re-validated with the same constraints as Create.
func (s *TaskService) Update(ctx context.Context, caller domain.Caller, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	log := slogx.FromContext(ctx)

	task, err := s.fetchAuthorized(ctx, caller, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	fe := fieldErrors{}
	if patch.Title != nil {
		validateTitle(fe, *patch.Title)
	}
	if patch.Status != nil {
		validateStatus(fe, *patch.Status)
	}
	if err := fe.err(); err != nil {
		return domain.Task{}, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	if err := s.Store.Tasks().UpdateTask(ctx, task); err != nil {
		log.Error("failed to update task", slog.String("task_id", taskID), slog.Any("error", err))
		return domain.Task{}, err
	}

	return s.Store.Tasks().GetTaskByID(ctx, task.ID)
}

// Delete permanently removes a task. Deleting an already-gone id reports
// ErrTaskNotFound, not success.
func (s *TaskService) Delete(ctx context.Context, caller domain.Caller, taskID string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.fetchAuthorized(ctx, caller, taskID); err != nil {
		return err
	}

	existed, err := s.Store.Tasks().DeleteTask(ctx, taskID)
	if err != nil {
		log.Error("failed to delete task", slog.String("task_id", taskID), slog.Any("error", err))
		return err
	}
	if !existed {
		// Lost a race with a concurrent delete.
		return ErrTaskNotFound
	}

	log.Info("task deleted", slog.String("task_id", taskID))
	return nil
}

// ListTasksRequest narrows and pages a List call. Page > 0 selects offset
// pagination; a non-empty Cursor selects forward-only cursor pagination;
// neither returns everything in scope.
type ListTasksRequest struct {
	Status      string // raw status filter, validated when non-empty
	OwnerUserID string // honored only for admin callers
	Page        int
	Cursor      string
}

// List returns the caller's visible tasks in stable (created_at, id) order.
// Non-admins are always scoped to their own tasks no matter what owner
// filter they pass.
func (s *TaskService) List(ctx context.Context, caller domain.Caller, req ListTasksRequest) (domain.TaskPage, error) {
	fe := fieldErrors{}
	var status *domain.TaskStatus
	if req.Status != "" {
		st := domain.TaskStatus(req.Status)
		if !st.Valid() {
			fe.add("status", "The status must be either pending or completed.")
		} else {
			status = &st
		}
	}

	owner := caller.UserID
	if caller.IsAdmin() {
		owner = req.OwnerUserID // may be empty: all users
	}

	afterID := ""
	if req.Cursor != "" {
		cur, err := idx.Parse(req.Cursor)
		if err != nil {
			fe.add("cursor", "The cursor is not a valid page cursor.")
		} else {
			afterID = cur.String()
		}
	}
	if err := fe.err(); err != nil {
		return domain.TaskPage{}, err
	}

	repo := s.Store.Tasks()

	switch {
	case req.Page > 0:
		total, err := repo.CountTasks(ctx, owner, status)
		if err != nil {
			return domain.TaskPage{}, err
		}
		tasks, err := repo.ListTasks(ctx, owner, status, "", TasksPerPage, (req.Page-1)*TasksPerPage)
		if err != nil {
			return domain.TaskPage{}, err
		}
		lastPage := (total + TasksPerPage - 1) / TasksPerPage
		if lastPage < 1 {
			lastPage = 1
		}
		return domain.TaskPage{
			Tasks:    tasks,
			PerPage:  TasksPerPage,
			Page:     req.Page,
			LastPage: lastPage,
			Total:    total,
		}, nil

	case afterID != "":
		tasks, err := repo.ListTasks(ctx, owner, status, afterID, TasksPerPage, 0)
		if err != nil {
			return domain.TaskPage{}, err
		}
		page := domain.TaskPage{Tasks: tasks, PerPage: TasksPerPage}
		if len(tasks) == TasksPerPage {
			next := tasks[len(tasks)-1].ID
			page.NextCursor = &next
		}
		return page, nil

	default:
		tasks, err := repo.ListTasks(ctx, owner, status, "", 0, 0)
		if err != nil {
			return domain.TaskPage{}, err
		}
		return domain.TaskPage{Tasks: tasks, PerPage: len(tasks)}, nil
	}
}

// fetchAuthorized loads a task and applies the shared visibility rule.
// Missing row and foreign row take the identical path out.
func (s *TaskService) fetchAuthorized(ctx context.Context, caller domain.Caller, taskID string) (domain.Task, error) {
	task, err := s.Store.Tasks().GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	if task.UserID != caller.UserID && !caller.IsAdmin() {
		return domain.Task{}, ErrTaskNotFound
	}
	return task, nil
}

func validateTitle(fe fieldErrors, title string) {
	if title == "" {
		fe.add("title", "The title field is required.")
	} else if len(title) > maxTitleLength {
		fe.add("title", "The title may not be greater than 255 characters.")
	}
}

func validateStatus(fe fieldErrors, status domain.TaskStatus) {
	if !status.Valid() {
		fe.add("status", "The status must be either pending or completed.")
	}
}
