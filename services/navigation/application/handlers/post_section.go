package handlers

import (
	"net/http"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/navboard/pkg/validator"
	appsvcs "github.com/ghuser/navboard/services/navigation/application/services"
)

// CreateSectionRequest is the request body for POST /navbar/sections.
// The section id is derived from the name (lowercased, spaces to hyphens).
type CreateSectionRequest struct {
	Name        string `json:"name" validate:"required,max=100" example:"Analytics"`
	Description string `json:"description,omitempty" validate:"omitempty,max=255" example:"Reporting pages"`
} // @name CreateSectionRequest

// PostSectionHandler handles POST /navbar/sections requests.
type PostSectionHandler struct {
	svc *appsvcs.Services
}

// NewPostSectionHandler returns a PostSectionHandler backed by the given services.
func NewPostSectionHandler(svc *appsvcs.Services) *PostSectionHandler {
	return &PostSectionHandler{svc: svc}
}

// Execute creates a new dashboard section.
//
//	@Summary		Create section
//	@Description	Creates a dashboard section appended at the end of the section order
//	@Tags			navbar
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSectionRequest	true	"Section creation request"
//	@Success		201		{object}	SectionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/navbar/sections [post]
func (h *PostSectionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateSectionRequest](w, r)
	if !ok {
		return
	}

	section, err := h.svc.Section.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toSectionResponse(section))
}
