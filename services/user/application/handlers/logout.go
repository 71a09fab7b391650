package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/navboard/pkg/auth"
	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
)

// LogoutResponse acknowledges a destroyed session.
type LogoutResponse struct {
	Success bool `json:"success" example:"true"`
} // @name LogoutResponse

// LogoutHandler handles POST /auth/logout requests.
type LogoutHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewLogoutHandler returns a LogoutHandler backed by the given services and
// session store.
func NewLogoutHandler(svc *appsvcs.Services, store sessions.Store) *LogoutHandler {
	return &LogoutHandler{svc: svc, store: store}
}

// Execute destroys the current session. Idempotent: logging out without a
// session still succeeds.
//
//	@Summary		Logout
//	@Description	Expires the session cookie and clears server-side session state
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	LogoutResponse
//	@Router			/auth/logout [post]
func (h *LogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if p, ok := auth.PeekSession(h.store, r); ok {
		h.svc.Auth.RecordLogout(r.Context(), p.UserID, appsvcs.LoginMeta{
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
		})
	}

	if err := auth.ClearSession(h.store, w, r); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, LogoutResponse{Success: true})
}
