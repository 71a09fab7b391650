package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	appsvcs "github.com/ghuser/navboard/services/navigation/application/services"
)

// DeleteSectionResponse acknowledges a removed section.
type DeleteSectionResponse struct {
	ID string `json:"id" example:"analytics"`
} // @name DeleteSectionResponse

// DeleteSectionHandler handles DELETE /navbar/sections/{id} requests.
type DeleteSectionHandler struct {
	svc *appsvcs.Services
}

// NewDeleteSectionHandler returns a DeleteSectionHandler backed by the given services.
func NewDeleteSectionHandler(svc *appsvcs.Services) *DeleteSectionHandler {
	return &DeleteSectionHandler{svc: svc}
}

// Execute removes a section; its items move to "main" in the same transaction.
//
//	@Summary		Delete section
//	@Description	Deletes a section and reassigns its items to the main section
//	@Tags			navbar
//	@Produce		json
//	@Param			id	path		string	true	"Section id"
//	@Success		200	{object}	DeleteSectionResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/navbar/sections/{id} [delete]
func (h *DeleteSectionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "section id is required")
		return
	}

	if err := h.svc.Section.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, DeleteSectionResponse{ID: id})
}
