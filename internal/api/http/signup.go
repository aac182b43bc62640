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

type SignupHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Client Signup Endpoint
//	@Description	Register a new client account. Accounts start in pending status and cannot
//	@Description	log in until an admin issues an invite token for them.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.SignupRequest				true	"Signup request"
//	@Success		201		{object}	tasksdk.UserResponse				"id, name, email, role, status"
//	@Failure		400		{object}	tasksdk.ErrorResponse				"message"
//	@Failure		422		{object}	tasksdk.ValidationErrorResponse		"errors"
//	@Router			/v1/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tasksdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tasksdk.ErrorResponse{
			Message: "Invalid JSON body.",
		})
		return
	}

	user, err := h.IdentityService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case writeValidation(w, err):
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusUnprocessableEntity, tasksdk.ValidationErrorResponse{
				Errors: map[string][]string{
					"email": {"The email has already been taken."},
				},
			})
		default:
			log.Error("failed to register user", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, tasksdk.ErrorResponse{
				Message: "Failed to register user.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userResponse(user))
}
