package handlers

import (
	"time"

	"github.com/ghuser/navboard/services/navigation/domain/models"
)

// NavItemResponse is the wire shape of a navigation item.
type NavItemResponse struct {
	ID        int64     `json:"id"        example:"1"`
	Name      string    `json:"name"      example:"Home"`
	Href      string    `json:"href"      example:"/"`
	IsPublic  bool      `json:"isPublic"  example:"true"`
	Order     int       `json:"order"     example:"0"`
	IsActive  bool      `json:"isActive"  example:"true"`
	Icon      string    `json:"icon,omitempty" example:"home"`
	Section   string    `json:"section,omitempty" example:"main"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
} // @name NavItemResponse

// SectionResponse is the wire shape of a dashboard section.
type SectionResponse struct {
	ID          string    `json:"id"          example:"analytics"`
	Name        string    `json:"name"        example:"Analytics"`
	Description string    `json:"description,omitempty" example:"Reporting pages"`
	Order       int       `json:"order"       example:"2"`
	CreatedAt   time.Time `json:"createdAt"   example:"2024-01-15T10:30:00Z"`
} // @name SectionResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"navbar item not found"`
} // @name ErrorResponse

func toNavItemResponse(it *models.NavItem) NavItemResponse {
	return NavItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Href:      it.Target,
		IsPublic:  it.IsPublic,
		Order:     it.Order,
		IsActive:  it.IsActive,
		Icon:      it.Icon,
		Section:   it.Section,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func toNavItemResponses(items []*models.NavItem) []NavItemResponse {
	out := make([]NavItemResponse, len(items))
	for i, it := range items {
		out[i] = toNavItemResponse(it)
	}
	return out
}

func toSectionResponse(s *models.Section) SectionResponse {
	return SectionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Order:       s.Order,
		CreatedAt:   s.CreatedAt,
	}
}
