package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
	"github.com/ghuser/navboard/services/user/domain/models"
)

// GetUsersHandler handles GET /users requests.
type GetUsersHandler struct {
	svc *appsvcs.Services
}

// NewGetUsersHandler returns a GetUsersHandler backed by the given services.
func NewGetUsersHandler(svc *appsvcs.Services) *GetUsersHandler {
	return &GetUsersHandler{svc: svc}
}

// Execute lists users with filtering, sorting, and pagination.
//
//	@Summary		List users
//	@Description	Returns one page of users matching the filter
//	@Tags			users
//	@Produce		json
//	@Param			page		query		int		false	"Page number"		default(1)
//	@Param			limit		query		int		false	"Page size"			default(10)
//	@Param			role		query		string	false	"Role filter"		Enums(user, admin, editor)
//	@Param			search		query		string	false	"Name/email search"
//	@Param			sortBy		query		string	false	"Sort column"		default(created_at)
//	@Param			sortOrder	query		string	false	"Sort direction"	Enums(ASC, DESC)
//	@Success		200			{object}	httpx.ListResponse[UserResponse]
//	@Failure		401			{object}	ErrorResponse
//	@Router			/users [get]
func (h *GetUsersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ListFilter{
		Role:      q.Get("role"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter = filter.Normalize()

	users, total, err := h.svc.User.List(r.Context(), filter)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	httpx.JSON(w, http.StatusOK, httpx.ListResponse[UserResponse]{
		Data:       out,
		Pagination: httpx.NewPagination(filter.Page, filter.Limit, total),
	})
}
