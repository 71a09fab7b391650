package handlers

import (
	"time"

	"github.com/ghuser/navboard/services/user/domain/models"
)

// UserResponse is the wire shape of an account. The password hash is never
// serialized.
type UserResponse struct {
	ID            int64      `json:"id"            example:"1"`
	Email         string     `json:"email"         example:"ada@example.com"`
	Name          *string    `json:"name"          example:"Ada"`
	Role          string     `json:"role"          example:"admin"`
	IsActive      bool       `json:"isActive"      example:"true"`
	EmailVerified bool       `json:"emailVerified" example:"false"`
	LastLogin     *time.Time `json:"lastLogin"`
	LoginCount    int        `json:"loginCount"    example:"12"`
	CreatedAt     time.Time  `json:"createdAt"     example:"2024-01-15T10:30:00Z"`
	UpdatedAt     time.Time  `json:"updatedAt"     example:"2024-01-15T10:30:00Z"`
} // @name UserResponse

// ActivityResponse is one audit-trail entry of a user.
type ActivityResponse struct {
	ID          int64     `json:"id"          example:"1"`
	Action      string    `json:"action"      example:"login"`
	Description *string   `json:"description" example:"credential login"`
	IPAddress   *string   `json:"ipAddress"   example:"10.0.0.1"`
	CreatedAt   time.Time `json:"createdAt"   example:"2024-01-15T10:30:00Z"`
} // @name ActivityResponse

// StatsResponse aggregates account counts.
type StatsResponse struct {
	TotalUsers    int `json:"totalUsers"    example:"42"`
	ActiveUsers   int `json:"activeUsers"   example:"40"`
	InactiveUsers int `json:"inactiveUsers" example:"2"`
	AdminUsers    int `json:"adminUsers"    example:"3"`
	RegularUsers  int `json:"regularUsers"  example:"37"`
	NewUsers30d   int `json:"newUsers30d"   example:"5"`
	ActiveUsers7d int `json:"activeUsers7d" example:"18"`
} // @name UserStatsResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"user not found"`
} // @name ErrorResponse

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		LastLogin:     u.LastLogin,
		LoginCount:    u.LoginCount,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toActivityResponse(a *models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		Action:      a.Action,
		Description: a.Description,
		IPAddress:   a.IPAddress,
		CreatedAt:   a.CreatedAt,
	}
}
