package auth

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/ghuser/navboard/pkg/httpx"
	"github.com/ghuser/navboard/pkg/logger"
)

const sessionName = "navboard_session"

// Session value keys. Values are gob-encoded server-side; keep types stable.
const (
	sessionUserIDKey = "user_id"
	sessionRoleKey   = "role"
)

// principalFromSession reads the authenticated principal out of a session.
// A decode failure or missing/zero user_id counts as no principal, never as
// an error that should abort the request pipeline.
func principalFromSession(store sessions.Store, r *http.Request) (Principal, bool) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return Principal{}, false
	}
	userID, ok := session.Values[sessionUserIDKey].(int64)
	if !ok || userID == 0 {
		return Principal{}, false
	}
	role, _ := session.Values[sessionRoleKey].(string)
	return Principal{UserID: userID, Role: role}, true
}

// PeekSession reports the principal carried by the request's session, if any.
// Unlike RequireAuth it never writes a response; the session status endpoint
// and the logout handler use it.
func PeekSession(store sessions.Store, r *http.Request) (Principal, bool) {
	return principalFromSession(store, r)
}

// IssueSession writes a fresh session cookie carrying the principal.
// Called by the login handler after credentials are verified.
func IssueSession(store sessions.Store, w http.ResponseWriter, r *http.Request, p Principal) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		// A tampered cookie yields a decode error plus a usable new session.
		session, _ = store.New(r, sessionName)
	}
	session.Values[sessionUserIDKey] = p.UserID
	session.Values[sessionRoleKey] = p.Role
	return session.Save(r, w)
}

// ClearSession expires the session cookie and deletes the server-side state.
func ClearSession(store sessions.Store, w http.ResponseWriter, r *http.Request) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	// Drop the identity values as well: a replayed cookie must not decode
	// back into a usable principal even if the client ignores MaxAge.
	delete(session.Values, sessionUserIDKey)
	delete(session.Values, sessionRoleKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Gate is the request-level authorization decision for page routes,
// mounted at the router root. Rules, in order:
//
//  1. The login page and all /api paths pass through unconditionally —
//     API routes enforce their own check via RequireAuth.
//  2. /dashboard paths require a valid session; otherwise the request is
//     redirected to loginPath.
//  3. Everything else (public pages) is allowed.
//
// Gate never mutates session state; a malformed cookie is treated as an
// absent session.
func Gate(store sessions.Store, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if path == loginPath || strings.HasPrefix(path, "/api") {
				next.ServeHTTP(w, r)
				return
			}

			if strings.HasPrefix(path, "/dashboard") {
				p, ok := principalFromSession(store, r)
				if !ok {
					http.Redirect(w, r, loginPath, http.StatusFound)
					return
				}
				next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth is a chi middleware that enforces authentication via session
// cookies on API routes. It reads the session cookie, extracts the principal,
// and injects it into the request context. Returns 401 Unauthorized if the
// session is missing, invalid, or lacks a user identity.
//
// After this middleware, handlers can safely call auth.PrincipalFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, ok := session.Values[sessionUserIDKey].(int64)
			if !ok || userID == 0 {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			role, _ := session.Values[sessionRoleKey].(string)
			ctx := WithPrincipal(r.Context(), Principal{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
