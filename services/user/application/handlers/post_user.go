package handlers

import (
	"net/http"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/navboard/pkg/validator"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
)

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255" example:"ada@example.com"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=255" example:"Ada"`
	Role     string  `json:"role,omitempty" validate:"omitempty,oneof=user admin editor" example:"user"`
	Password string  `json:"password,omitempty" validate:"omitempty,min=8,max=72" example:"s3cret-pass"`
} // @name CreateUserRequest

// PostUserHandler handles POST /users requests.
type PostUserHandler struct {
	svc *appsvcs.Services
}

// NewPostUserHandler returns a PostUserHandler backed by the given services.
func NewPostUserHandler(svc *appsvcs.Services) *PostUserHandler {
	return &PostUserHandler{svc: svc}
}

// Execute registers a new account.
//
//	@Summary		Create user
//	@Description	Registers an account; a supplied password enables credential login
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"User creation request"
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/users [post]
func (h *PostUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateUserRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.User.Create(r.Context(), appsvcs.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toUserResponse(user))
}
