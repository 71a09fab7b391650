package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// MenuCacheTTL bounds staleness if an invalidation is ever missed.
	MenuCacheTTL = time.Hour

	menuCacheKeyPrefix = "navmenu"
)

// CachedNavItem is the denormalized navigation entry stored in Redis,
// mirroring the listing read path row for row.
type CachedNavItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Target    string    `json:"href"`
	IsPublic  bool      `json:"isPublic"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	Icon      string    `json:"icon,omitempty"`
	Section   string    `json:"section,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MenuCache holds the active menu listing per scope ("public" or "dashboard")
// as a JSON blob. Listings are read far more often than they change, so the
// whole ordered slice is cached and dropped on any mutation.
// Key format: "navmenu:{scope}"
type MenuCache struct {
	client *RedisClient
}

// NewMenuCache creates a MenuCache backed by the given RedisClient.
func NewMenuCache(r *RedisClient) *MenuCache {
	return &MenuCache{client: r}
}

// Get retrieves the cached listing for scope.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *MenuCache) Get(ctx context.Context, scope string) ([]CachedNavItem, error) {
	data, err := c.client.Client().Get(ctx, c.key(scope)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var items []CachedNavItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return items, nil
}

// Set writes the ordered listing for scope with the standard TTL.
func (c *MenuCache) Set(ctx context.Context, scope string, items []CachedNavItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(scope), data, MenuCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing for the given scopes.
func (c *MenuCache) Invalidate(ctx context.Context, scopes ...string) error {
	keys := make([]string, len(scopes))
	for i, s := range scopes {
		keys[i] = c.key(s)
	}
	if err := c.client.Client().Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// key builds the Redis key: "navmenu:{scope}"
func (c *MenuCache) key(scope string) string {
	return fmt.Sprintf("%s:%s", menuCacheKeyPrefix, scope)
}
