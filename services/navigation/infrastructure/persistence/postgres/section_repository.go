package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/navboard/pkg/database"
	"github.com/ghuser/navboard/pkg/events"
	navdomain "github.com/ghuser/navboard/services/navigation/domain"
	"github.com/ghuser/navboard/services/navigation/domain/models"
)

const sectionColumns = `id, name, description, "order", created_at`

// SectionRepository implements repositories.SectionRepository against PostgreSQL.
type SectionRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewSectionRepository returns a SectionRepository backed by the given pool
// and event bus. bus may be nil (tests).
func NewSectionRepository(db *database.Database, bus *events.EventBus) *SectionRepository {
	return &SectionRepository{db: db, bus: bus}
}

// List returns all sections sorted by order asc, id asc.
func (r *SectionRepository) List(ctx context.Context) ([]*models.Section, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+sectionColumns+` FROM nav_sections ORDER BY "order" ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var sections []*models.Section
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Order, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}
	return sections, nil
}

// Create persists a new section appended at the end of the section ordering.
// Returns ErrSectionExists on a duplicate slug.
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) (*models.Section, error) {
	var stored models.Section
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM nav_sections`).Scan(&count); err != nil {
			return fmt.Errorf("count sections: %w", err)
		}

		row := tx.QueryRowContext(ctx,
			`INSERT INTO nav_sections (id, name, description, "order")
			 VALUES ($1, $2, $3, $4)
			 RETURNING `+sectionColumns,
			section.ID, section.Name, section.Description, count+1,
		)
		err := row.Scan(&stored.ID, &stored.Name, &stored.Description, &stored.Order, &stored.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return navdomain.ErrSectionExists
			}
			return fmt.Errorf("insert section: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Delete removes a section after moving its items to "main", as one
// transaction — readers never observe an item referencing a dead section.
// "main" itself is reserved and never deletable.
func (r *SectionRepository) Delete(ctx context.Context, id string) error {
	if id == models.SectionMain {
		return navdomain.ErrSectionReserved
	}
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM nav_sections WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete section: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("delete section rows: %w", err)
		} else if n == 0 {
			return navdomain.ErrSectionNotFound
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE nav_items SET section = $1, updated_at = now()
			 WHERE section = $2 AND is_public = false`,
			models.SectionMain, id,
		)
		if err != nil {
			return fmt.Errorf("reassign section items: %w", err)
		}

		if r.bus == nil {
			return nil
		}
		ir := &ItemRepository{db: r.db, bus: r.bus}
		return ir.publishMenuUpdated(tx, []models.Scope{models.ScopeDashboard})
	})
}
