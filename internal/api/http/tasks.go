package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/taskdesk/taskdesk/internal/api/domain"
	"github.com/taskdesk/taskdesk/internal/api/service"
	"github.com/taskdesk/taskdesk/pkg/httpx"
	"github.com/taskdesk/taskdesk/pkg/slogx"
	"github.com/taskdesk/taskdesk/pkg/tasksdk"
)

// taskNotFoundMessage is shared by missing rows and rows owned by someone
// else, so responses leak nothing about other users' tasks.
const taskNotFoundMessage = "Task not found or you do not have permission to view it."

type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleCreate godoc
//
//	@Summary		Create Task Endpoint
//	@Description	Create a task owned by the authenticated user. Status defaults to pending.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.TaskCreateRequest			true	"Task to create"
//	@Success		201		{object}	tasksdk.TaskResponse				"task"
//	@Failure		400		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		401		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		422		{object}	tasksdk.ValidationErrorResponse		"errors"
//	@Security		BearerAuth
//	@Router			/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req tasksdk.TaskCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tasksdk.ErrorResponse{
			Message: "Invalid JSON body.",
		})
		return
	}

	status := domain.TaskPending
	if req.Status != "" {
		status = domain.TaskStatus(req.Status)
	}

	task, err := h.TaskService.Create(ctx, caller, req.Title, req.Description, status)
	if err != nil {
		if writeValidation(w, err) {
			return
		}
		log.Error("failed to create task", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tasksdk.ErrorResponse{
			Message: "Failed to create task.",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, taskResponse(task))
}

// HandleGet godoc
//
//	@Summary		Get Task Endpoint
//	@Description	Fetch a single task. Users see only their own tasks; admins see any task.
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path		string					true	"Task ID"
//	@Success		200	{object}	tasksdk.TaskResponse	"task"
//	@Failure		401	{object}	tasksdk.ErrorResponse	"message"
//	@Failure		404	{object}	tasksdk.ErrorResponse	"message"
//	@Security		BearerAuth
//	@Router			/v1/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeUnauthenticated(w)
		return
	}

	task, err := h.TaskService.Get(ctx, caller, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, tasksdk.ErrorResponse{
				Message: taskNotFoundMessage,
			})
			return
		}
		log.Error("failed to fetch task", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tasksdk.ErrorResponse{
			Message: "Failed to fetch task.",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskResponse(task))
}

// HandleUpdate godoc
//
//	@Summary		Update Task Endpoint
//	@Description	Partially update a task. Omitted fields keep their stored value.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Task ID"
//	@Param			request	body		tasksdk.TaskUpdateRequest			true	"Fields to update"
//	@Success		200		{object}	tasksdk.TaskResponse				"task"
//	@Failure		400		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		401		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		404		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		422		{object}	tasksdk.ValidationErrorResponse		"errors"
//	@Security		BearerAuth
//	@Router			/v1/tasks/{id} [put].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req tasksdk.TaskUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tasksdk.ErrorResponse{
			Message: "Invalid JSON body.",
		})
		return
	}

	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		st := domain.TaskStatus(*req.Status)
		patch.Status = &st
	}

	task, err := h.TaskService.Update(ctx, caller, r.PathValue("id"), patch)
	if err != nil {
		switch {
		case writeValidation(w, err):
		case errors.Is(err, service.ErrTaskNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, tasksdk.ErrorResponse{
				Message: taskNotFoundMessage,
			})
		default:
			log.Error("failed to update task", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, tasksdk.ErrorResponse{
				Message: "Failed to update task.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskResponse(task))
}

// HandleDelete godoc
//
//	@Summary		Delete Task Endpoint
//	@Description	Permanently delete a task. A second delete of the same task returns 404.
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path		string					true	"Task ID"
//	@Success		200	{object}	tasksdk.MessageResponse	"message"
//	@Failure		401	{object}	tasksdk.ErrorResponse	"message"
//	@Failure		404	{object}	tasksdk.ErrorResponse	"message"
//	@Security		BearerAuth
//	@Router			/v1/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeUnauthenticated(w)
		return
	}

	if err := h.TaskService.Delete(ctx, caller, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, tasksdk.ErrorResponse{
				Message: taskNotFoundMessage,
			})
			return
		}
		log.Error("failed to delete task", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tasksdk.ErrorResponse{
			Message: "Failed to delete task.",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.MessageResponse{
		Message: "Task deleted successfully.",
	})
}

// HandleList godoc
//
//	@Summary		List Tasks Endpoint
//	@Description	List the authenticated user's tasks in creation order. Admins may pass
//	@Description	user_id to scope to one user, or omit it to see everything. Supports
//	@Description	page-number pagination (page) and forward-only cursor pagination (cursor).
//	@Tags			Tasks
//	@Produce		json
//	@Param			status	query		string								false	"Filter by status (pending or completed)"
//	@Param			user_id	query		string								false	"Owner filter (admin only)"
//	@Param			page	query		int									false	"Page number (5 per page)"
//	@Param			cursor	query		string								false	"Cursor from a previous page's next_cursor"
//	@Success		200		{object}	tasksdk.TaskPageResponse			"data, pagination metadata"
//	@Failure		401		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		422		{object}	tasksdk.ValidationErrorResponse		"errors"
//	@Security		BearerAuth
//	@Router			/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeUnauthenticated(w)
		return
	}

	q := r.URL.Query()
	page := 0
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httpx.WriteJSON(w, http.StatusUnprocessableEntity, tasksdk.ValidationErrorResponse{
				Errors: map[string][]string{
					"page": {"The page must be a positive integer."},
				},
			})
			return
		}
		page = n
	}

	pageResult, err := h.TaskService.List(ctx, caller, service.ListTasksRequest{
		Status:      q.Get("status"),
		OwnerUserID: q.Get("user_id"),
		Page:        page,
		Cursor:      q.Get("cursor"),
	})
	if err != nil {
		if writeValidation(w, err) {
			return
		}
		log.Error("failed to list tasks", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tasksdk.ErrorResponse{
			Message: "Failed to list tasks.",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskPageResponse(pageResult))
}
