package services

import (
	"context"
	"fmt"

	pkgcache "github.com/ghuser/navboard/pkg/cache"
	navdomain "github.com/ghuser/navboard/services/navigation/domain"
	"github.com/ghuser/navboard/services/navigation/domain/models"
	"github.com/ghuser/navboard/services/navigation/domain/repositories"
)

// NavigationService orchestrates navigation item reads and writes.
// Change events are published by the repository layer (outbox pattern).
// Active listings are served from the Redis menu cache when available.
type NavigationService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.MenuCache
}

// NewNavigationService returns a NavigationService wired with the given
// repository and cache. cache may be nil (tests, worker).
func NewNavigationService(repo repositories.ItemRepository, cache *pkgcache.MenuCache) *NavigationService {
	return &NavigationService{repo: repo, cache: cache}
}

// CreateItemInput carries the validated fields for a new navigation item.
type CreateItemInput struct {
	Name     string
	Target   string
	IsPublic bool
	IsActive bool
	Icon     string
	Section  string
}

// List returns the items of a scope sorted by order asc, id asc.
// The activeOnly listing (the menu read path) goes through the Redis cache:
// cache hit serves directly, a miss falls through to Postgres and warms the
// cache asynchronously.
func (s *NavigationService) List(ctx context.Context, scope models.Scope, activeOnly bool) ([]*models.NavItem, error) {
	if activeOnly && s.cache != nil {
		// A miss and cache trouble both fall through to Postgres.
		if cached, err := s.cache.Get(ctx, string(scope)); err == nil {
			return cachedToItems(cached), nil
		}
	}

	items, err := s.repo.List(ctx, scope, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list nav items: %w", err)
	}

	if activeOnly && s.cache != nil {
		toCache := itemsToCached(items)
		go func() {
			_ = s.cache.Set(context.Background(), string(scope), toCache)
		}()
	}

	return items, nil
}

// GetByID returns a single item regardless of its active flag — inactive
// items stay addressable for edit and delete.
func (s *NavigationService) GetByID(ctx context.Context, id int64) (*models.NavItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get nav item: %w", err)
	}
	return item, nil
}

// Create validates and persists a new item. The item's order is assigned at
// the end of its (scope, section) partition; a client-supplied order is not
// honored on create, keeping partition ordering dense.
func (s *NavigationService) Create(ctx context.Context, in CreateItemInput) (*models.NavItem, error) {
	if err := models.ValidateName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", navdomain.ErrInvalidName, err)
	}
	if err := models.ValidateTarget(in.Target); err != nil {
		return nil, fmt.Errorf("%w: %v", navdomain.ErrInvalidTarget, err)
	}

	item := &models.NavItem{
		Name:     in.Name,
		Target:   in.Target,
		IsPublic: in.IsPublic,
		IsActive: in.IsActive,
		Icon:     in.Icon,
		Section:  in.Section,
	}
	stored, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create nav item: %w", err)
	}

	s.invalidate(ctx, string(stored.Scope()))
	return stored, nil
}

// Update applies a partial patch. Name and target changes are re-validated;
// unset fields keep their stored values. Returns ErrItemNotFound for an
// unknown id.
func (s *NavigationService) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.NavItem, error) {
	if patch.Name != nil {
		if err := models.ValidateName(*patch.Name); err != nil {
			return nil, fmt.Errorf("%w: %v", navdomain.ErrInvalidName, err)
		}
	}
	if patch.Target != nil {
		if err := models.ValidateTarget(*patch.Target); err != nil {
			return nil, fmt.Errorf("%w: %v", navdomain.ErrInvalidTarget, err)
		}
	}

	stored, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update nav item: %w", err)
	}

	// A patch may have moved the item across scopes; drop both listings.
	s.invalidate(ctx, string(models.ScopePublic), string(models.ScopeDashboard))
	return stored, nil
}

// Delete removes an item and returns the deleted snapshot. Remaining order
// values are left as-is; the next reorder from the editor restores density.
func (s *NavigationService) Delete(ctx context.Context, id int64) (*models.NavItem, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete nav item: %w", err)
	}
	s.invalidate(ctx, string(deleted.Scope()))
	return deleted, nil
}

// Reorder applies the moves as one all-or-nothing batch. The submitted order
// values are trusted to be dense for the touched partitions; density is not
// re-derived server-side.
func (s *NavigationService) Reorder(ctx context.Context, moves []models.Move) error {
	if len(moves) == 0 {
		return navdomain.ErrEmptyReorder
	}
	if err := s.repo.Reorder(ctx, moves); err != nil {
		return fmt.Errorf("reorder nav items: %w", err)
	}
	s.invalidate(ctx, string(models.ScopePublic), string(models.ScopeDashboard))
	return nil
}

// invalidate drops cached listings; cache errors are best-effort.
func (s *NavigationService) invalidate(ctx context.Context, scopes ...string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx, scopes...)
}

func itemsToCached(items []*models.NavItem) []pkgcache.CachedNavItem {
	out := make([]pkgcache.CachedNavItem, len(items))
	for i, it := range items {
		out[i] = pkgcache.CachedNavItem{
			ID:        it.ID,
			Name:      it.Name,
			Target:    it.Target,
			IsPublic:  it.IsPublic,
			Order:     it.Order,
			IsActive:  it.IsActive,
			Icon:      it.Icon,
			Section:   it.Section,
			CreatedAt: it.CreatedAt,
			UpdatedAt: it.UpdatedAt,
		}
	}
	return out
}

func cachedToItems(cached []pkgcache.CachedNavItem) []*models.NavItem {
	out := make([]*models.NavItem, len(cached))
	for i, c := range cached {
		out[i] = &models.NavItem{
			ID:        c.ID,
			Name:      c.Name,
			Target:    c.Target,
			IsPublic:  c.IsPublic,
			Order:     c.Order,
			IsActive:  c.IsActive,
			Icon:      c.Icon,
			Section:   c.Section,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}
	return out
}
