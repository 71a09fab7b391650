package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for the navigation bounded context.
const (
	// TopicItemCreated is published when a navigation item is created.
	TopicItemCreated = "navigation.item.created"

	// TopicMenuUpdated is published after any mutation that changes what a
	// menu listing would return (update, delete, reorder, section changes).
	TopicMenuUpdated = "navigation.menu.updated"
)

// ItemCreatedEvent is published transactionally with the item insert.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	Scope      string    `json:"scope"`
	Section    string    `json:"section,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MenuUpdatedEvent tells consumers which menu scopes went stale.
// Handlers must be idempotent — the bus retries on failure.
type MenuUpdatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Scopes     []string  `json:"scopes"` // "public" and/or "dashboard"
	OccurredAt time.Time `json:"occurred_at"`
}
