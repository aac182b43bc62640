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

type LoginHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password. Pending accounts must additionally
//	@Description	supply the invite token issued by an admin; the token is consumed on the
//	@Description	first successful login and the account becomes active.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.LoginRequest				true	"Login request"
//	@Success		200		{object}	tasksdk.SessionResponse				"access_token, token_type, expires_in"
//	@Failure		400		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		401		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		403		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		422		{object}	tasksdk.ValidationErrorResponse		"errors"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tasksdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tasksdk.ErrorResponse{
			Message: "Invalid JSON body.",
		})
		return
	}

	session, err := h.IdentityService.Authenticate(ctx, req.Email, req.Password, req.InviteToken)
	if err != nil {
		switch {
		case writeValidation(w, err):
		case errors.Is(err, service.ErrInvalidCredentials):
			// Unknown email and wrong password deliberately share one body.
			httpx.WriteJSON(w, http.StatusUnauthorized, tasksdk.ErrorResponse{
				Message: "The provided credentials are incorrect.",
			})
		case errors.Is(err, service.ErrInviteRequired):
			httpx.WriteJSON(w, http.StatusForbidden, tasksdk.ErrorResponse{
				Message: "An invite token is required for your first login.",
			})
		case errors.Is(err, service.ErrInvalidOrExpiredInvite):
			httpx.WriteJSON(w, http.StatusForbidden, tasksdk.ErrorResponse{
				Message: "The invite token is invalid or has expired.",
			})
		default:
			log.Error("failed to authenticate user", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, tasksdk.ErrorResponse{
				Message: "Failed to authenticate.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.SessionResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
	})
}
