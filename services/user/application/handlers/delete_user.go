package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
)

// DeleteUserHandler handles DELETE /users requests.
type DeleteUserHandler struct {
	svc *appsvcs.Services
}

// NewDeleteUserHandler returns a DeleteUserHandler backed by the given services.
func NewDeleteUserHandler(svc *appsvcs.Services) *DeleteUserHandler {
	return &DeleteUserHandler{svc: svc}
}

// Execute deletes the account named by the id query parameter. The audit
// trail goes with it.
//
//	@Summary		Delete user
//	@Description	Deletes an account by id and returns its last state
//	@Tags			users
//	@Produce		json
//	@Param			id	query		int	true	"User id"
//	@Success		200	{object}	UserResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/users [delete]
func (h *DeleteUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		httpx.JSONError(w, http.StatusBadRequest, "ID parameter is required")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		httpx.JSONError(w, http.StatusBadRequest, "ID must be a valid number")
		return
	}

	deleted, err := h.svc.User.Delete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(deleted))
}
