package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/navboard/pkg/database"
	userdomain "github.com/ghuser/navboard/services/user/domain"
	"github.com/ghuser/navboard/services/user/domain/models"
)

// userColumns omits password_hash; only GetByEmail reads the hash.
const userColumns = `id, email, name, role, is_active, email_verified, last_login, login_count, created_at, updated_at`

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// List returns one page of users plus the total match count. The filter's
// sort column must come pre-validated against models.SortColumns; it is
// interpolated into ORDER BY.
func (r *UserRepository) List(ctx context.Context, filter models.ListFilter) ([]*models.User, int, error) {
	filter = filter.Normalize()

	var (
		where  []string
		args   []any
		argPos = 1
	)
	if filter.Role != "" {
		where = append(where, fmt.Sprintf("role = $%d", argPos))
		args = append(args, filter.Role)
		argPos++
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users`+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT `+userColumns+` FROM users%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		whereClause, filter.SortBy, filter.SortOrder, argPos, argPos+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate users: %w", err)
	}
	return users, total, nil
}

// GetByID returns a user without its password hash.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", userdomain.ErrUserNotFound, id)
		}
		return nil, err
	}
	return u, nil
}

// GetByEmail returns a user including its password hash for credential checks.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, email,
	).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive, &u.EmailVerified,
		&u.LastLogin, &u.LoginCount, &u.CreatedAt, &u.UpdatedAt, &u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", userdomain.ErrUserNotFound, email)
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return &u, nil
}

// Create persists a new account. Returns ErrEmailExists on a duplicate email.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	row := r.db.DB().QueryRowContext(ctx,
		`INSERT INTO users (email, name, role, password_hash, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		user.Email, user.Name, role, user.PasswordHash, user.IsActive,
	)
	stored, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: %s", userdomain.ErrEmailExists, user.Email)
		}
		return nil, err
	}
	return stored, nil
}

// Update applies a partial patch. An empty patch is rejected before touching
// the database.
func (r *UserRepository) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	if patch.Empty() {
		return nil, userdomain.ErrNoFields
	}

	var (
		sets   []string
		args   []any
		argPos = 1
	)
	if patch.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *patch.Name)
		argPos++
	}
	if patch.Role != nil {
		sets = append(sets, fmt.Sprintf("role = $%d", argPos))
		args = append(args, *patch.Role)
		argPos++
	}
	if patch.IsActive != nil {
		sets = append(sets, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *patch.IsActive)
		argPos++
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(sets, ", "), argPos,
	)
	stored, err := scanUser(r.db.DB().QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", userdomain.ErrUserNotFound, id)
		}
		return nil, err
	}
	return stored, nil
}

// Delete removes the account; activities cascade with the FK.
func (r *UserRepository) Delete(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`DELETE FROM users WHERE id = $1 RETURNING `+userColumns, id)
	deleted, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", userdomain.ErrUserNotFound, id)
		}
		return nil, err
	}
	return deleted, nil
}

// RecordLogin stamps last_login and bumps login_count.
func (r *UserRepository) RecordLogin(ctx context.Context, id int64) error {
	_, err := r.db.DB().ExecContext(ctx,
		`UPDATE users SET last_login = now(), login_count = login_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}

// LogActivity appends one audit-trail entry.
func (r *UserRepository) LogActivity(ctx context.Context, a *models.Activity) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO user_activities (user_id, action, description, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.UserID, a.Action, a.Description, a.IPAddress, a.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("log activity: %w", err)
	}
	return nil
}

// Activities returns the latest audit entries for a user, newest first.
func (r *UserRepository) Activities(ctx context.Context, userID int64, limit int) ([]*models.Activity, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, user_id, action, description, ip_address, user_agent, created_at
		 FROM user_activities WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var activities []*models.Activity
	for rows.Next() {
		var a models.Activity
		err := rows.Scan(&a.ID, &a.UserID, &a.Action, &a.Description, &a.IPAddress, &a.UserAgent, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return activities, nil
}

// Stats aggregates account counts in one round trip.
func (r *UserRepository) Stats(ctx context.Context) (*models.Stats, error) {
	var s models.Stats
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active = true),
			COUNT(*) FILTER (WHERE is_active = false),
			COUNT(*) FILTER (WHERE role = 'admin'),
			COUNT(*) FILTER (WHERE role = 'user'),
			COUNT(*) FILTER (WHERE created_at >= now() - INTERVAL '30 days'),
			COUNT(*) FILTER (WHERE last_login >= now() - INTERVAL '7 days')
		FROM users`,
	).Scan(
		&s.TotalUsers, &s.ActiveUsers, &s.InactiveUsers,
		&s.AdminUsers, &s.RegularUsers, &s.NewUsers30d, &s.ActiveUsers7d,
	)
	if err != nil {
		return nil, fmt.Errorf("query user stats: %w", err)
	}
	return &s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive, &u.EmailVerified,
		&u.LastLogin, &u.LoginCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
