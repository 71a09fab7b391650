package handlers

import (
	"net/http"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/navboard/pkg/validator"
	appsvcs "github.com/ghuser/navboard/services/navigation/application/services"
	"github.com/ghuser/navboard/services/navigation/domain/models"
)

// ReorderMove is one id→order assignment of a bulk reorder.
type ReorderMove struct {
	ID    int64 `json:"id" validate:"required,min=1" example:"3"`
	Order int   `json:"order" validate:"min=0" example:"0"`
} // @name ReorderMove

// ReorderRequest is the request body for PUT /navbar/reorder.
type ReorderRequest struct {
	Items []ReorderMove `json:"items" validate:"required,min=1,dive"`
} // @name ReorderRequest

// ReorderResponse acknowledges an applied reorder batch.
type ReorderResponse struct {
	Updated int `json:"updated" example:"3"`
} // @name ReorderResponse

// ReorderHandler handles PUT /navbar/reorder requests.
type ReorderHandler struct {
	svc *appsvcs.Services
}

// NewReorderHandler returns a ReorderHandler backed by the given services.
func NewReorderHandler(svc *appsvcs.Services) *ReorderHandler {
	return &ReorderHandler{svc: svc}
}

// Execute applies a bulk reorder as a single all-or-nothing batch.
//
//	@Summary		Reorder navbar items
//	@Description	Applies all submitted order assignments atomically; an unknown id aborts the batch
//	@Tags			navbar
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ReorderRequest	true	"Order assignments"
//	@Success		200		{object}	ReorderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/navbar/reorder [put]
func (h *ReorderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ReorderRequest](w, r)
	if !ok {
		return
	}

	moves := make([]models.Move, len(req.Items))
	for i, m := range req.Items {
		moves[i] = models.Move{ID: m.ID, Order: m.Order}
	}

	if err := h.svc.Navigation.Reorder(r.Context(), moves); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ReorderResponse{Updated: len(moves)})
}
