package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/taskdesk/taskdesk/internal/api/domain"
	"github.com/taskdesk/taskdesk/internal/api/service"
	"github.com/taskdesk/taskdesk/pkg/httpx"
	"github.com/taskdesk/taskdesk/pkg/slogx"
	"github.com/taskdesk/taskdesk/pkg/tasksdk"
)

type DirectoryHandler struct {
	DirectoryService *service.DirectoryService
}

// ServeHTTP godoc
//
//	@Summary		User Directory Endpoint
//	@Description	List users from the external directory, 10 per page, with optional gender
//	@Description	and name/email search filters.
//	@Tags			Directory
//	@Produce		json
//	@Param			gender	query		string						false	"Filter by gender (male or female)"
//	@Param			search	query		string						false	"Case-insensitive match on first name, last name or email"
//	@Param			page	query		int							false	"Page number"
//	@Success		200		{object}	tasksdk.DirectoryResponse	"data, pagination metadata"
//	@Failure		502		{object}	tasksdk.ErrorResponse		"message"
//	@Router			/v1/directory [get].
func (h *DirectoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := r.URL.Query()
	page := 1
	if raw := q.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}

	listing, err := h.DirectoryService.List(ctx, q.Get("gender"), q.Get("search"), page)
	if err != nil {
		if errors.Is(err, service.ErrDirectoryUnavailable) {
			httpx.WriteJSON(w, http.StatusBadGateway, tasksdk.ErrorResponse{
				Message: "The user directory is currently unavailable.",
			})
			return
		}
		log.Error("failed to list directory", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tasksdk.ErrorResponse{
			Message: "Failed to list directory.",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, directoryResponse(listing))
}

func directoryResponse(p domain.DirectoryPage) tasksdk.DirectoryResponse {
	out := tasksdk.DirectoryResponse{
		Data:     make([]tasksdk.DirectoryUserResponse, 0, len(p.Users)),
		Page:     p.Page,
		PerPage:  p.PerPage,
		Total:    p.Total,
		LastPage: p.LastPage,
	}
	for _, u := range p.Users {
		out.Data = append(out.Data, tasksdk.DirectoryUserResponse{
			Gender: u.Gender,
			Name:   tasksdk.DirectoryName{First: u.Name.First, Last: u.Name.Last},
			Email:  u.Email,
		})
	}
	return out
}
