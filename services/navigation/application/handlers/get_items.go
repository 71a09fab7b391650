package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	appsvcs "github.com/ghuser/navboard/services/navigation/application/services"
	"github.com/ghuser/navboard/services/navigation/domain/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// GetItemsHandler handles GET /navbar requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists the active items of a menu scope.
//
//	@Summary		List navbar items
//	@Description	Returns the active navigation items of a scope in display order
//	@Tags			navbar
//	@Produce		json
//	@Param			type	query		string	false	"Menu scope"	Enums(public, dashboard)	default(public)
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Param			limit	query		int		false	"Page size"		default(10)
//	@Success		200		{object}	httpx.ListResponse[NavItemResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Router			/navbar [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	scope := models.ScopePublic
	if raw := r.URL.Query().Get("type"); raw != "" {
		parsed, err := models.ParseScope(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "type must be public or dashboard")
			return
		}
		scope = parsed
	}

	page := queryInt(r, "page", defaultPage)
	limit := queryInt(r, "limit", defaultLimit)
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	items, err := h.svc.Navigation.List(r.Context(), scope, true)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, httpx.ListResponse[NavItemResponse]{
		Data:       toNavItemResponses(items),
		Pagination: httpx.NewPagination(page, limit, len(items)),
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
