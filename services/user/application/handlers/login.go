package handlers

import (
	"net"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/navboard/pkg/auth"
	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/navboard/pkg/validator"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
} // @name LoginRequest

// LoginResponse is returned on successful login; the session cookie rides on
// the response headers.
type LoginResponse struct {
	User UserResponse `json:"user"`
} // @name LoginResponse

// LoginHandler handles POST /auth/login requests.
type LoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewLoginHandler returns a LoginHandler backed by the given services and
// session store.
func NewLoginHandler(svc *appsvcs.Services, store sessions.Store) *LoginHandler {
	return &LoginHandler{svc: svc, store: store}
}

// Execute verifies credentials and issues a session cookie.
//
//	@Summary		Login
//	@Description	Verifies email and password and starts a session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Auth.Authenticate(r.Context(), req.Email, req.Password, appsvcs.LoginMeta{
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	err = auth.IssueSession(h.store, w, r, auth.Principal{UserID: user.ID, Role: user.Role})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{User: toUserResponse(user)})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
