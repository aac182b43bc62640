package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskdesk/taskdesk/internal/api/service"
	"github.com/taskdesk/taskdesk/pkg/httpx"
	"github.com/taskdesk/taskdesk/pkg/slogx"
	"github.com/taskdesk/taskdesk/pkg/tasksdk"
)

type InviteHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Issue Invite Endpoint
//	@Description	Issue an invite token for a pending client, identified by email. Reissuing
//	@Description	replaces any previous token for that client. This is an admin-only operation;
//	@Description	the raw token is returned exactly once.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.InviteRequest				true	"Invite request"
//	@Success		200		{object}	tasksdk.InviteResponse				"invite_token, expires_at"
//	@Failure		400		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		401		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		403		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		404		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		422		{object}	tasksdk.ValidationErrorResponse		"errors"
//	@Security		BearerAuth
//	@Router			/v1/admin/invite [post].
func (h *InviteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req tasksdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tasksdk.ErrorResponse{
			Message: "Invalid JSON body.",
		})
		return
	}

	invite, err := h.IdentityService.IssueInvite(ctx, caller, req.Email)
	if err != nil {
		switch {
		case writeValidation(w, err):
		case errors.Is(err, service.ErrNotAdmin):
			httpx.WriteJSON(w, http.StatusForbidden, tasksdk.ErrorResponse{
				Message: "Only admins can send invites.",
			})
		case errors.Is(err, service.ErrClientNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, tasksdk.ErrorResponse{
				Message: "No pending client found with that email.",
			})
		case errors.Is(err, service.ErrAlreadyActive):
			// Same status as not-found, distinct body so the admin can tell
			// the two apart.
			httpx.WriteJSON(w, http.StatusNotFound, tasksdk.ErrorResponse{
				Message: "That client account is already active.",
			})
		default:
			log.Error("failed to issue invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, tasksdk.ErrorResponse{
				Message: "Failed to issue invite.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.InviteResponse{
		InviteToken: invite.Token,
		ExpiresAt:   invite.ExpiresAt,
	})
}
