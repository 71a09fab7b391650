package handlers

import (
	"net/http"

	"github.com/ghuser/navboard/pkg/errhttp"
	"github.com/ghuser/navboard/pkg/httpx"
	appsvcs "github.com/ghuser/navboard/services/navigation/application/services"
)

// GetSectionsHandler handles GET /navbar/sections requests.
type GetSectionsHandler struct {
	svc *appsvcs.Services
}

// NewGetSectionsHandler returns a GetSectionsHandler backed by the given services.
func NewGetSectionsHandler(svc *appsvcs.Services) *GetSectionsHandler {
	return &GetSectionsHandler{svc: svc}
}

// Execute lists dashboard sections in display order.
//
//	@Summary		List sections
//	@Description	Returns all dashboard sections ordered by position
//	@Tags			navbar
//	@Produce		json
//	@Success		200	{array}		SectionResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/navbar/sections [get]
func (h *GetSectionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	sections, err := h.svc.Section.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	out := make([]SectionResponse, len(sections))
	for i, s := range sections {
		out[i] = toSectionResponse(s)
	}
	httpx.JSON(w, http.StatusOK, out)
}
