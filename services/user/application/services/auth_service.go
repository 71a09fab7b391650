package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/navboard/pkg/logger"
	userdomain "github.com/ghuser/navboard/services/user/domain"
	"github.com/ghuser/navboard/services/user/domain/models"
	"github.com/ghuser/navboard/services/user/domain/repositories"
)

// AuthService verifies credentials for session issuance. Sessions themselves
// live in pkg/auth; this service only answers "who is this".
type AuthService struct {
	repo repositories.UserRepository
	log  logger.Logger
}

// NewAuthService returns an AuthService backed by the given repository.
func NewAuthService(repo repositories.UserRepository, log logger.Logger) *AuthService {
	return &AuthService{repo: repo, log: log}
}

// LoginMeta carries request metadata recorded with the login audit entry.
type LoginMeta struct {
	IPAddress string
	UserAgent string
}

// Authenticate checks email and password against the stored bcrypt hash.
// Unknown email, missing hash, wrong password, and a deactivated account all
// return ErrInvalidCredentials so the response never reveals which part failed.
// On success the login is recorded and an audit entry written.
func (s *AuthService) Authenticate(ctx context.Context, email, password string, meta LoginMeta) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			return nil, userdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if !user.IsActive || user.PasswordHash == nil {
		return nil, userdomain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return nil, userdomain.ErrInvalidCredentials
	}

	if err := s.repo.RecordLogin(ctx, user.ID); err != nil {
		s.log.ErrorContext(ctx, "failed to record login", "user_id", user.ID, "error", err)
	}
	s.logActivity(ctx, user.ID, "login", "credential login", meta)

	user.PasswordHash = nil
	return user, nil
}

// RecordLogout writes a logout audit entry. Best-effort.
func (s *AuthService) RecordLogout(ctx context.Context, userID int64, meta LoginMeta) {
	s.logActivity(ctx, userID, "logout", "session destroyed", meta)
}

func (s *AuthService) logActivity(ctx context.Context, userID int64, action, description string, meta LoginMeta) {
	a := &models.Activity{UserID: userID, Action: action, Description: &description}
	if meta.IPAddress != "" {
		a.IPAddress = &meta.IPAddress
	}
	if meta.UserAgent != "" {
		a.UserAgent = &meta.UserAgent
	}
	if err := s.repo.LogActivity(ctx, a); err != nil {
		s.log.ErrorContext(ctx, "failed to log activity", "user_id", userID, "action", action, "error", err)
	}
}
