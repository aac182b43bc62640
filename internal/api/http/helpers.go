package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/taskdesk/taskdesk/internal/api/domain"
	"github.com/taskdesk/taskdesk/internal/api/service"
	"github.com/taskdesk/taskdesk/pkg/httpx"
	"github.com/taskdesk/taskdesk/pkg/tasksdk"
)

// callerFromContext rebuilds the authenticated caller from the values the
// authn middleware stored on the request context.
func callerFromContext(ctx context.Context) (domain.Caller, bool) {
	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		return domain.Caller{}, false
	}
	role, ok := ctx.Value(httpx.CtxKeyRole).(string)
	if !ok || role == "" {
		return domain.Caller{}, false
	}
	return domain.Caller{UserID: userID, Role: domain.Role(role)}, true
}

// writeUnauthenticated is the fallback for handlers registered behind the
// authn middleware that still find no caller on the context.
func writeUnauthenticated(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, tasksdk.ErrorResponse{
		Message: "Authentication required.",
	})
}

// writeValidation maps a service ValidationError to a 422 with per-field
// messages. Returns false when err is some other kind.
func writeValidation(w http.ResponseWriter, err error) bool {
	var ve *service.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	httpx.WriteJSON(w, http.StatusUnprocessableEntity, tasksdk.ValidationErrorResponse{
		Errors: ve.Fields,
	})
	return true
}

func userResponse(u domain.User) tasksdk.UserResponse {
	return tasksdk.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func taskResponse(t domain.Task) tasksdk.TaskResponse {
	return tasksdk.TaskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func taskPageResponse(p domain.TaskPage) tasksdk.TaskPageResponse {
	out := tasksdk.TaskPageResponse{
		Data:       make([]tasksdk.TaskResponse, 0, len(p.Tasks)),
		PerPage:    p.PerPage,
		Page:       p.Page,
		LastPage:   p.LastPage,
		Total:      p.Total,
		NextCursor: p.NextCursor,
	}
	for _, t := range p.Tasks {
		out.Data = append(out.Data, taskResponse(t))
	}
	return out
}
