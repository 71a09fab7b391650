package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/navboard/pkg/database"
	"github.com/ghuser/navboard/pkg/events"
	navdomain "github.com/ghuser/navboard/services/navigation/domain"
	domainevents "github.com/ghuser/navboard/services/navigation/domain/events"
	"github.com/ghuser/navboard/services/navigation/domain/models"
)

const itemColumns = `id, name, href, is_public, "order", is_active, icon, section, created_at, updated_at`

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Change events are published through the event bus inside the same
// transaction as the write (outbox pattern).
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. bus may be nil (tests); no events are published then.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// List returns the items of one scope ordered by "order" asc, id asc.
// Order values may contain gaps after deletes; callers must not assume
// contiguity.
func (r *ItemRepository) List(ctx context.Context, scope models.Scope, activeOnly bool) ([]*models.NavItem, error) {
	query := `SELECT ` + itemColumns + ` FROM nav_items WHERE is_public = $1`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY "order" ASC, id ASC`

	rows, err := r.db.DB().QueryContext(ctx, query, scope.IsPublic())
	if err != nil {
		return nil, fmt.Errorf("query nav items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []*models.NavItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nav items: %w", err)
	}
	return items, nil
}

// GetByID returns one item. Returns ErrItemNotFound if absent.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.NavItem, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM nav_items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, navdomain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create persists a new item appended at the end of its (scope, section)
// partition and publishes an ItemCreatedEvent within the same transaction.
func (r *ItemRepository) Create(ctx context.Context, item *models.NavItem) (*models.NavItem, error) {
	section := models.NormalizeSection(item.Scope(), item.Section)

	var stored *models.NavItem
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := lockPartition(ctx, tx, item.IsPublic, section); err != nil {
			return err
		}
		order, err := partitionCount(ctx, tx, item.IsPublic, section)
		if err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx,
			`INSERT INTO nav_items (name, href, is_public, "order", is_active, icon, section)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING `+itemColumns,
			item.Name, item.Target, item.IsPublic, order, item.IsActive, item.Icon, section,
		)
		stored, err = scanItem(row)
		if err != nil {
			return fmt.Errorf("insert nav item: %w", err)
		}

		return r.publishCreated(tx, stored)
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// Update applies the patch fields and refreshes updated_at, all inside one
// transaction. Moving an item to another partition re-appends it at the end
// of the destination unless the patch carries an explicit order.
func (r *ItemRepository) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.NavItem, error) {
	var stored *models.NavItem
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT `+itemColumns+` FROM nav_items WHERE id = $1 FOR UPDATE`, id)
		current, err := scanItem(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return navdomain.ErrItemNotFound
			}
			return err
		}

		next := *current
		if patch.Name != nil {
			next.Name = *patch.Name
		}
		if patch.Target != nil {
			next.Target = *patch.Target
		}
		if patch.IsActive != nil {
			next.IsActive = *patch.IsActive
		}
		if patch.IsPublic != nil {
			next.IsPublic = *patch.IsPublic
		}
		if patch.Icon != nil {
			next.Icon = *patch.Icon
		}
		if patch.Section != nil {
			next.Section = *patch.Section
		}
		next.Section = models.NormalizeSection(next.Scope(), next.Section)

		switch {
		case patch.Order != nil:
			next.Order = *patch.Order
		case next.Partition() != current.Partition():
			// Item moved between partitions; append at the destination end.
			if err := lockPartition(ctx, tx, next.IsPublic, next.Section); err != nil {
				return err
			}
			order, err := partitionCount(ctx, tx, next.IsPublic, next.Section)
			if err != nil {
				return err
			}
			next.Order = order
		}

		row = tx.QueryRowContext(ctx,
			`UPDATE nav_items
			 SET name = $1, href = $2, is_public = $3, "order" = $4,
			     is_active = $5, icon = $6, section = $7, updated_at = now()
			 WHERE id = $8
			 RETURNING `+itemColumns,
			next.Name, next.Target, next.IsPublic, next.Order,
			next.IsActive, next.Icon, next.Section, id,
		)
		stored, err = scanItem(row)
		if err != nil {
			return fmt.Errorf("update nav item: %w", err)
		}

		return r.publishMenuUpdated(tx, scopeSet(current.Scope(), stored.Scope()))
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// Delete removes the item and returns the deleted snapshot. The order values
// of the remaining items are untouched; the gap stays until the next reorder.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (*models.NavItem, error) {
	var deleted *models.NavItem
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`DELETE FROM nav_items WHERE id = $1 RETURNING `+itemColumns, id)
		var err error
		deleted, err = scanItem(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return navdomain.ErrItemNotFound
			}
			return fmt.Errorf("delete nav item: %w", err)
		}
		return r.publishMenuUpdated(tx, scopeSet(deleted.Scope()))
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// Reorder updates every listed item's order in one transaction. An unknown
// id fails the whole batch; nothing is applied. Row locks taken by the
// updates serialize concurrent reorders touching the same rows.
func (r *ItemRepository) Reorder(ctx context.Context, moves []models.Move) error {
	if len(moves) == 0 {
		return navdomain.ErrEmptyReorder
	}
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		scopes := map[models.Scope]struct{}{}
		for _, m := range moves {
			var isPublic bool
			err := tx.QueryRowContext(ctx,
				`UPDATE nav_items SET "order" = $1, updated_at = now()
				 WHERE id = $2 RETURNING is_public`,
				m.Order, m.ID,
			).Scan(&isPublic)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("%w: id %d", navdomain.ErrItemNotFound, m.ID)
				}
				return fmt.Errorf("reorder nav item %d: %w", m.ID, err)
			}
			scopes[models.ScopeFromPublic(isPublic)] = struct{}{}
		}

		affected := make([]models.Scope, 0, len(scopes))
		for s := range scopes {
			affected = append(affected, s)
		}
		return r.publishMenuUpdated(tx, affected)
	})
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.NavItem) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name,
		Scope:      string(item.Scope()),
		Section:    item.Section,
		OccurredAt: item.CreatedAt,
	}
	if err := publishTx(r.bus, tx, domainevents.TopicItemCreated, event, event.EventID); err != nil {
		return fmt.Errorf("publish item created: %w", err)
	}
	return nil
}

func (r *ItemRepository) publishMenuUpdated(tx *sql.Tx, scopes []models.Scope) error {
	if r.bus == nil || len(scopes) == 0 {
		return nil
	}
	event := domainevents.MenuUpdatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		OccurredAt: time.Now().UTC(),
	}
	for _, s := range scopes {
		event.Scopes = append(event.Scopes, string(s))
	}
	if err := publishTx(r.bus, tx, domainevents.TopicMenuUpdated, event, event.EventID); err != nil {
		return fmt.Errorf("publish menu updated: %w", err)
	}
	return nil
}

// publishTx marshals event and publishes it on topic within tx.
func publishTx(bus *events.EventBus, tx *sql.Tx, topic string, event any, eventID uuid.UUID) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// lockPartition takes a transaction-scoped advisory lock on a (scope, section)
// partition. Serializes concurrent appends so two creates cannot both read the
// same partition count and insert duplicate order values. Released on commit
// or rollback.
func lockPartition(ctx context.Context, tx *sql.Tx, isPublic bool, section string) error {
	key := fmt.Sprintf("nav_items:%t:%s", isPublic, section)
	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1))`, key,
	); err != nil {
		return fmt.Errorf("lock partition %s: %w", key, err)
	}
	return nil
}

// partitionCount returns the number of items in a (scope, section) partition,
// which doubles as the append position for base-0 ordering.
func partitionCount(ctx context.Context, tx *sql.Tx, isPublic bool, section string) (int, error) {
	var count int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM nav_items WHERE is_public = $1 AND section = $2`,
		isPublic, section,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count partition items: %w", err)
	}
	return count, nil
}

// scopeSet deduplicates scopes preserving first occurrence.
func scopeSet(scopes ...models.Scope) []models.Scope {
	seen := map[models.Scope]struct{}{}
	var out []models.Scope
	for _, s := range scopes {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.NavItem, error) {
	var item models.NavItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Target, &item.IsPublic, &item.Order,
		&item.IsActive, &item.Icon, &item.Section, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("scan nav item: %w", err)
	}
	return &item, nil
}
