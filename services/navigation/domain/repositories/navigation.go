package repositories

import (
	"context"

	"github.com/ghuser/navboard/services/navigation/domain/models"
)

// ItemRepository is the persistence interface for navigation items.
// The domain layer owns this interface; infrastructure implements it.
//
// Ordering contract: Create assigns the new item's order at the end of its
// (scope, section) partition. Delete tolerates the gap it leaves; callers
// listing items must sort by order and never assume contiguity. Reorder is
// all-or-nothing — a single unknown id aborts the whole batch.
type ItemRepository interface {
	// List returns items in the given scope sorted by order asc, id asc.
	// With activeOnly, inactive items are excluded (the public read path).
	List(ctx context.Context, scope models.Scope, activeOnly bool) ([]*models.NavItem, error)

	GetByID(ctx context.Context, id int64) (*models.NavItem, error)

	// Create persists item, assigning ID, Order (appended at the end of its
	// partition), and timestamps. Returns the stored row.
	Create(ctx context.Context, item *models.NavItem) (*models.NavItem, error)

	// Update applies the non-nil patch fields and refreshes UpdatedAt.
	// Returns ErrItemNotFound if id does not exist. A patch that moves the
	// item to another partition re-appends it at the end of the destination
	// unless the patch sets an explicit order.
	Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.NavItem, error)

	// Delete removes the row and returns the deleted snapshot.
	// Remaining items keep their order values (gap tolerated).
	Delete(ctx context.Context, id int64) (*models.NavItem, error)

	// Reorder applies every move in one transaction; any failure rolls back
	// all of them. Density of the submitted order values is the caller's
	// responsibility.
	Reorder(ctx context.Context, moves []models.Move) error
}

// SectionRepository is the persistence interface for dashboard sections.
type SectionRepository interface {
	// List returns sections sorted by order asc.
	List(ctx context.Context) ([]*models.Section, error)

	// Create persists a new section appended at the end of the section order.
	// Returns ErrSectionExists when the slug is already taken.
	Create(ctx context.Context, section *models.Section) (*models.Section, error)

	// Delete removes the section after reassigning its items to "main",
	// both in a single transaction. Returns ErrSectionReserved for "main"
	// and ErrSectionNotFound for an unknown id.
	Delete(ctx context.Context, id string) error
}
