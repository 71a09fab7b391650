package repositories

import (
	"context"

	"github.com/ghuser/navboard/services/user/domain/models"
)

// UserRepository is the persistence interface for user accounts and their
// audit trail. The domain layer owns this interface; infrastructure
// implements it.
type UserRepository interface {
	// List returns one page of users matching the filter plus the total
	// match count. The filter must already be normalized.
	List(ctx context.Context, filter models.ListFilter) ([]*models.User, int, error)

	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByEmail returns the user including its password hash; the login
	// path is its only caller. Returns ErrUserNotFound for unknown emails.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Create persists user, assigning ID and timestamps.
	// Returns ErrEmailExists when the email is already taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Update applies the non-nil patch fields. Returns ErrNoFields for an
	// empty patch and ErrUserNotFound for an unknown id.
	Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)

	// Delete removes the account. Activities go with it (FK cascade).
	Delete(ctx context.Context, id int64) (*models.User, error)

	// RecordLogin bumps login_count and stamps last_login.
	RecordLogin(ctx context.Context, id int64) error

	// LogActivity appends an audit-trail entry. Best-effort: callers may
	// ignore the error.
	LogActivity(ctx context.Context, activity *models.Activity) error

	// Activities returns the latest entries for a user, newest first.
	Activities(ctx context.Context, userID int64, limit int) ([]*models.Activity, error)

	// Stats aggregates account counts in a single query.
	Stats(ctx context.Context) (*models.Stats, error)
}
