package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/navboard/pkg/app"
	"github.com/ghuser/navboard/pkg/cache"
	"github.com/ghuser/navboard/pkg/config"
	"github.com/ghuser/navboard/pkg/database"
	"github.com/ghuser/navboard/pkg/events"
	"github.com/ghuser/navboard/pkg/logger"
	"github.com/ghuser/navboard/pkg/telemetry"
	navEvents "github.com/ghuser/navboard/services/navigation/domain/events"
	"github.com/ghuser/navboard/services/navigation/domain/models"
	navPostgres "github.com/ghuser/navboard/services/navigation/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Cfg:      cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		navEvents.TopicItemCreated: handleItemCreated(a),
		navEvents.TopicMenuUpdated: handleMenuUpdated(a),
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
		registered = append(registered, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// handleItemCreated returns a handler for navigation.item.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Re-reads the item's scope from Postgres and warms the Redis menu cache so
// the next menu read is served without a database round trip.
func handleItemCreated(a *app.Application) func(context.Context, *message.Message) error {
	menuCache := cache.NewMenuCache(a.Redis)
	repo := navPostgres.NewItemRepository(a.Db, nil)
	return func(ctx context.Context, msg *message.Message) error {
		var evt navEvents.ItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		scope, err := models.ParseScope(evt.Scope)
		if err != nil {
			a.Logger.WarnContext(ctx, "item.created with unknown scope", "scope", evt.Scope)
			return nil
		}

		items, err := repo.List(ctx, scope, true)
		if err != nil {
			return err
		}
		if err := menuCache.Set(ctx, string(scope), toCached(items)); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for item.created",
				"item_id", evt.ItemID, "error", err)
			return nil
		}

		a.Logger.InfoContext(ctx, "menu cache warmed", "scope", scope, "items", len(items))
		return nil
	}
}

// handleMenuUpdated drops the cached listings for every scope the mutation
// touched; the next read re-warms them.
func handleMenuUpdated(a *app.Application) func(context.Context, *message.Message) error {
	menuCache := cache.NewMenuCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt navEvents.MenuUpdatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if err := menuCache.Invalidate(ctx, evt.Scopes...); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "menu cache invalidated", "scopes", evt.Scopes)
		return nil
	}
}

func toCached(items []*models.NavItem) []cache.CachedNavItem {
	out := make([]cache.CachedNavItem, len(items))
	for i, it := range items {
		out[i] = cache.CachedNavItem{
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
