// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/ghuser/navboard/pkg/httpx"
	"github.com/ghuser/navboard/pkg/logger"
	navdomain "github.com/ghuser/navboard/services/navigation/domain"
	userdomain "github.com/ghuser/navboard/services/user/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 Internal Server Error with a generic message;
// the full detail is logged server-side and captured to Sentry, never written
// to the response body.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToStatus(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
		ctx := r.Context()
		logger.FromContext(ctx).ErrorContext(ctx, "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.CaptureException(err)
		}
	}
	httpx.JSONError(w, status, msg)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, navdomain.ErrItemNotFound),
		errors.Is(err, navdomain.ErrSectionNotFound),
		errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, navdomain.ErrSectionExists),
		errors.Is(err, userdomain.ErrEmailExists):
		return http.StatusConflict // 409
	case errors.Is(err, navdomain.ErrSectionReserved),
		errors.Is(err, navdomain.ErrInvalidName),
		errors.Is(err, navdomain.ErrInvalidTarget),
		errors.Is(err, navdomain.ErrEmptyReorder),
		errors.Is(err, userdomain.ErrNoFields),
		errors.Is(err, userdomain.ErrInvalidRole):
		return http.StatusBadRequest // 400
	case errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
