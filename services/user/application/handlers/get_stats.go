package handlers

import (
	"net/http"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
)

// GetStatsHandler handles GET /users/stats requests.
type GetStatsHandler struct {
	svc *appsvcs.Services
}

// NewGetStatsHandler returns a GetStatsHandler backed by the given services.
func NewGetStatsHandler(svc *appsvcs.Services) *GetStatsHandler {
	return &GetStatsHandler{svc: svc}
}

// Execute returns aggregate account statistics.
//
//	@Summary		User statistics
//	@Description	Aggregated account counts for the admin dashboard
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	StatsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/users/stats [get]
func (h *GetStatsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.User.Stats(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, StatsResponse{
		TotalUsers:    stats.TotalUsers,
		ActiveUsers:   stats.ActiveUsers,
		InactiveUsers: stats.InactiveUsers,
		AdminUsers:    stats.AdminUsers,
		RegularUsers:  stats.RegularUsers,
		NewUsers30d:   stats.NewUsers30d,
		ActiveUsers7d: stats.ActiveUsers7d,
	})
}
