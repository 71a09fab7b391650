package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	userdomain "github.com/ghuser/navboard/services/user/domain"
	"github.com/ghuser/navboard/services/user/domain/models"
	"github.com/ghuser/navboard/services/user/domain/repositories"
)

const defaultActivityLimit = 20

// UserService orchestrates account management for the admin panel.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUserInput carries the validated fields for a new account.
type CreateUserInput struct {
	Email    string
	Name     *string
	Role     string
	Password string // optional; empty means no credential login
}

// List returns one page of users plus the total match count.
func (s *UserService) List(ctx context.Context, filter models.ListFilter) ([]*models.User, int, error) {
	users, total, err := s.repo.List(ctx, filter.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

// GetByID returns a single account.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Create registers a new account. A supplied password is bcrypt-hashed before
// it reaches the repository.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: %q", userdomain.ErrInvalidRole, role)
	}

	user := &models.User{
		Email:    in.Email,
		Name:     in.Name,
		Role:     role,
		IsActive: true,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hash)
		user.PasswordHash = &h
	}

	stored, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return stored, nil
}

// Update applies a partial patch to an account. A patch naming an unknown
// role is rejected before touching the repository.
func (s *UserService) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	if patch.Empty() {
		return nil, userdomain.ErrNoFields
	}
	if patch.Role != nil && !models.ValidRole(*patch.Role) {
		return nil, fmt.Errorf("%w: %q", userdomain.ErrInvalidRole, *patch.Role)
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes an account and returns the deleted snapshot.
func (s *UserService) Delete(ctx context.Context, id int64) (*models.User, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return deleted, nil
}

// Stats aggregates account counts for the dashboard.
func (s *UserService) Stats(ctx context.Context) (*models.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	return stats, nil
}

// Activities returns the latest audit entries for a user, newest first.
// A non-positive limit falls back to the default page size.
func (s *UserService) Activities(ctx context.Context, userID int64, limit int) ([]*models.Activity, error) {
	if limit < 1 || limit > 100 {
		limit = defaultActivityLimit
	}
	// 404 for unknown users instead of an empty list.
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	activities, err := s.repo.Activities(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("user activities: %w", err)
	}
	return activities, nil
}
