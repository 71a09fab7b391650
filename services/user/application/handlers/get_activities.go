package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
)

// GetActivitiesHandler handles GET /users/{id}/activities requests.
type GetActivitiesHandler struct {
	svc *appsvcs.Services
}

// NewGetActivitiesHandler returns a GetActivitiesHandler backed by the given services.
func NewGetActivitiesHandler(svc *appsvcs.Services) *GetActivitiesHandler {
	return &GetActivitiesHandler{svc: svc}
}

// Execute returns the latest audit-trail entries for an account.
//
//	@Summary		User activities
//	@Description	Latest audit-trail entries of an account, newest first
//	@Tags			users
//	@Produce		json
//	@Param			id		path		int	true	"User id"
//	@Param			limit	query		int	false	"Max entries"	default(20)
//	@Success		200		{array}		ActivityResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/users/{id}/activities [get]
func (h *GetActivitiesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		httpx.JSONError(w, http.StatusBadRequest, "ID must be a valid number")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	activities, err := h.svc.User.Activities(r.Context(), id, limit)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	out := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		out[i] = toActivityResponse(a)
	}
	httpx.JSON(w, http.StatusOK, out)
}
