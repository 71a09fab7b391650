package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/navboard/pkg/auth"
	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
	userdomain "github.com/ghuser/navboard/services/user/domain"
)

// SessionResponse reports the current session's principal.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated" example:"true"`
	User          *UserResponse `json:"user,omitempty"`
} // @name SessionResponse

// GetSessionHandler handles GET /auth/session requests.
type GetSessionHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewGetSessionHandler returns a GetSessionHandler backed by the given
// services and session store.
func NewGetSessionHandler(svc *appsvcs.Services, store sessions.Store) *GetSessionHandler {
	return &GetSessionHandler{svc: svc, store: store}
}

// Execute reports whether the request carries a valid session and, if so,
// the account behind it. Always 200; anonymous requests are not an error.
//
//	@Summary		Session status
//	@Description	Reports the current session's account, if any
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	SessionResponse
//	@Router			/auth/session [get]
func (h *GetSessionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PeekSession(h.store, r)
	if !ok {
		httpx.JSON(w, http.StatusOK, SessionResponse{Authenticated: false})
		return
	}

	user, err := h.svc.User.GetByID(r.Context(), p.UserID)
	if err != nil {
		// A session naming a deleted account counts as anonymous.
		if errors.Is(err, userdomain.ErrUserNotFound) {
			httpx.JSON(w, http.StatusOK, SessionResponse{Authenticated: false})
			return
		}
		errhttp.WriteError(w, r, err)
		return
	}

	resp := toUserResponse(user)
	httpx.JSON(w, http.StatusOK, SessionResponse{Authenticated: true, User: &resp})
}
