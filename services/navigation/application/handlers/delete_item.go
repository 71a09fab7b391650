package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	appsvcs "github.com/ghuser/navboard/services/navigation/application/services"
)

// DeleteItemHandler handles DELETE /navbar requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes the item named by the id query parameter and returns the
// deleted snapshot. Remaining order values are left untouched.
//
//	@Summary		Delete navbar item
//	@Description	Deletes a navigation item by id and returns its last state
//	@Tags			navbar
//	@Produce		json
//	@Param			id	query		int	true	"Item id"
//	@Success		200	{object}	NavItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/navbar [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := h.svc.Navigation.Delete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toNavItemResponse(deleted))
}
