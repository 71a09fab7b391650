package services

import (
	"context"
	"fmt"

	pkgcache "github.com/ghuser/navboard/pkg/cache"
	navdomain "github.com/ghuser/navboard/services/navigation/domain"
	"github.com/ghuser/navboard/services/navigation/domain/models"
	"github.com/ghuser/navboard/services/navigation/domain/repositories"
)

// SectionService manages the dashboard section registry. The reserved
// "main" section is seeded by migration and protected from deletion at
// every layer below this one as well.
type SectionService struct {
	repo  repositories.SectionRepository
	cache *pkgcache.MenuCache
}

// NewSectionService returns a SectionService wired with the given repository
// and cache. cache may be nil.
func NewSectionService(repo repositories.SectionRepository, cache *pkgcache.MenuCache) *SectionService {
	return &SectionService{repo: repo, cache: cache}
}

// List returns all sections in display order.
func (s *SectionService) List(ctx context.Context) ([]*models.Section, error) {
	sections, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// Create slugifies the display name into the section id and appends the
// section at the end of the registry.
func (s *SectionService) Create(ctx context.Context, name, description string) (*models.Section, error) {
	if err := models.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", navdomain.ErrInvalidName, err)
	}
	slug := models.Slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("%w: name has no sluggable characters", navdomain.ErrInvalidName)
	}

	stored, err := s.repo.Create(ctx, &models.Section{
		ID:          slug,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return stored, nil
}

// Delete removes a section; its items are reassigned to "main" atomically
// with the removal. Deleting "main" fails with ErrSectionReserved.
func (s *SectionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, string(models.ScopeDashboard))
	}
	return nil
}
