package models

import "time"

// Roles assignable to a user account.
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// ValidRole reports whether role is one of the assignable roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// User is an account in the admin panel. PasswordHash is a bcrypt hash and
// never leaves the persistence and auth layers.
type User struct {
	ID            int64
	Email         string
	Name          *string
	Role          string
	PasswordHash  *string
	IsActive      bool
	EmailVerified bool
	LastLogin     *time.Time
	LoginCount    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserPatch carries a partial account update; nil fields are left unchanged.
type UserPatch struct {
	Name     *string
	Role     *string
	IsActive *bool
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Role == nil && p.IsActive == nil
}

// Activity is one audit-trail entry for a user.
type Activity struct {
	ID          int64
	UserID      int64
	Action      string
	Description *string
	IPAddress   *string
	UserAgent   *string
	CreatedAt   time.Time
}

// Stats aggregates account counts for the admin dashboard.
type Stats struct {
	TotalUsers    int
	ActiveUsers   int
	InactiveUsers int
	AdminUsers    int
	RegularUsers  int
	NewUsers30d   int
	ActiveUsers7d int
}

// ListFilter narrows and orders a user listing.
type ListFilter struct {
	Page      int
	Limit     int
	Role      string // empty = all roles
	Search    string // ILIKE match on name or email
	SortBy    string // must be one of the whitelisted columns
	SortOrder string // "ASC" or "DESC"
}

// SortColumns whitelists the columns a listing may sort by. Interpolating an
// unvalidated column name into ORDER BY would be an injection vector.
var SortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"email":      true,
	"name":       true,
	"role":       true,
	"last_login": true,
}

// Normalize fills filter defaults and clamps untrusted values.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}
	if !SortColumns[f.SortBy] {
		f.SortBy = "created_at"
	}
	if f.SortOrder != "ASC" && f.SortOrder != "DESC" {
		f.SortOrder = "DESC"
	}
	return f
}
