package handlers

import (
	"net/http"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/navboard/pkg/validator"
	appsvcs "github.com/ghuser/navboard/services/navigation/application/services"
	"github.com/ghuser/navboard/services/navigation/domain/models"
)

// UpdateItemRequest is the request body for PUT /navbar. The id names the
// item; every other field is optional and unset fields are left unchanged.
type UpdateItemRequest struct {
	ID       int64   `json:"id" validate:"required,min=1" example:"1"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100" example:"Home"`
	Href     *string `json:"href,omitempty" validate:"omitempty,navtarget" example:"/"`
	Order    *int    `json:"order,omitempty" validate:"omitempty,min=0" example:"0"`
	IsActive *bool   `json:"isActive,omitempty" example:"true"`
	IsPublic *bool   `json:"isPublic,omitempty" example:"true"`
	Icon     *string `json:"icon,omitempty" example:"home"`
	Section  *string `json:"section,omitempty" example:"main"`
} // @name UpdateNavItemRequest

// PutItemHandler handles PUT /navbar requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute applies a partial update to a navigation item.
//
//	@Summary		Update navbar item
//	@Description	Partially updates a navigation item; omitted fields are kept
//	@Tags			navbar
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateItemRequest	true	"Item update request"
//	@Success		200		{object}	NavItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/navbar [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Navigation.Update(r.Context(), req.ID, models.ItemPatch{
		Name:     req.Name,
		Target:   req.Href,
		Order:    req.Order,
		IsActive: req.IsActive,
		IsPublic: req.IsPublic,
		Icon:     req.Icon,
		Section:  req.Section,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toNavItemResponse(item))
}
