package handlers

import (
	"net/http"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/navboard/pkg/validator"
	appsvcs "github.com/ghuser/navboard/services/navigation/application/services"
)

// CreateItemRequest is the request body for POST /navbar.
// Order is accepted for wire compatibility but the item is always appended at
// the end of its partition.
type CreateItemRequest struct {
	Name     string `json:"name" validate:"required,max=100" example:"Home"`
	Href     string `json:"href" validate:"required,navtarget" example:"/"`
	Order    *int   `json:"order,omitempty" validate:"omitempty,min=0" example:"0"`
	IsActive *bool  `json:"isActive,omitempty" example:"true"`
	IsPublic bool   `json:"isPublic" example:"true"`
	Icon     string `json:"icon,omitempty" example:"home"`
	Section  string `json:"section,omitempty" example:"main"`
} // @name CreateNavItemRequest

// PostItemHandler handles POST /navbar requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new navigation item.
//
//	@Summary		Create navbar item
//	@Description	Creates a navigation item appended at the end of its scope/section
//	@Tags			navbar
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	NavItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/navbar [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	item, err := h.svc.Navigation.Create(r.Context(), appsvcs.CreateItemInput{
		Name:     req.Name,
		Target:   req.Href,
		IsPublic: req.IsPublic,
		IsActive: active,
		Icon:     req.Icon,
		Section:  req.Section,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toNavItemResponse(item))
}
