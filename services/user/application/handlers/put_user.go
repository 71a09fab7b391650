package handlers

import (
	"net/http"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/navboard/pkg/validator"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
	"github.com/ghuser/navboard/services/user/domain/models"
)

// UpdateUserRequest is the request body for PUT /users. The id names the
// account; other fields are optional and unset fields are left unchanged.
type UpdateUserRequest struct {
	ID       int64   `json:"id" validate:"required,min=1" example:"1"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=255" example:"Ada"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=user admin editor" example:"editor"`
	IsActive *bool   `json:"isActive,omitempty" example:"true"`
} // @name UpdateUserRequest

// PutUserHandler handles PUT /users requests.
type PutUserHandler struct {
	svc *appsvcs.Services
}

// NewPutUserHandler returns a PutUserHandler backed by the given services.
func NewPutUserHandler(svc *appsvcs.Services) *PutUserHandler {
	return &PutUserHandler{svc: svc}
}

// Execute applies a partial update to an account.
//
//	@Summary		Update user
//	@Description	Partially updates an account; omitted fields are kept
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateUserRequest	true	"User update request"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/users [put]
func (h *PutUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateUserRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.User.Update(r.Context(), req.ID, models.UserPatch{
		Name:     req.Name,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}
