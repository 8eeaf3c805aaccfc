package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/telemetry"
	productEvents "github.com/ghuser/stockroom/services/product/domain/events"
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

	pool, err := database.NewPool(ctx, cfg.InventoryDatabaseURL, log)
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

	//temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	//if err != nil {
	//	log.Error("failed to initialize temporal client", "error", err)
	//	os.Exit(1) //nolint:gocritic
	//}
	//defer temporalClient.Close()

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		//TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	outboxCtx, cancelOutbox := context.WithCancel(ctx)
	go runOutboxRelay(outboxCtx, appConfig)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelOutbox()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	subscriptions := []struct {
		topic   string
		handler func(context.Context, *message.Message) error
	}{
		{productEvents.TopicProductCreated, handleProductCreated(a)},
		{productEvents.TopicProductDeleted, handleProductDeleted(a)},
	}

	topics := make([]string, 0, len(subscriptions))
	for _, sub := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, sub.topic, sub.handler)
		if err != nil {
			return err
		}
		topics = append(topics, sub.topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(sub.topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleProductCreated returns a handler for product.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
func handleProductCreated(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt productEvents.ProductCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := productCache.Set(ctx, &cache.CachedProduct{
			ID:          evt.ProductID,
			OwnerID:     evt.OwnerID,
			Title:       evt.Title,
			Description: evt.Description,
			Category:    evt.Category,
			Price:       evt.Price,
			Quantity:    evt.Quantity,
			Image:       evt.Image,
			CreatedAt:   evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for product.created",
				"product_id", evt.ProductID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"product_id", evt.ProductID, "owner_id", evt.OwnerID)
		}

		return nil
	}
}

// handleProductDeleted returns a handler for product.deleted events.
// Drops the Redis read model so stale entries never outlive the row.
func handleProductDeleted(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt productEvents.ProductDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := productCache.Delete(ctx, evt.ProductID); err != nil {
			// Entry expires via TTL anyway; log and move on.
			a.Logger.WarnContext(ctx, "cache drop failed for product.deleted",
				"product_id", evt.ProductID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache dropped", "product_id", evt.ProductID)
		}

		return nil
	}
}

// runOutboxRelay polls the outbox for unpublished events and forwards them to
// the EventBus. Runs until ctx is cancelled.
// The Watermill Forwarder (started in cmd/api/main.go) handles at-least-once
// delivery; this relay is a secondary safety net for future outbox tables.
func runOutboxRelay(ctx context.Context, a *app.Application) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("outbox relay shutting down")
			return
		case <-ticker.C:
			// TODO: query outbox table, publish unpublished events, mark as published
		}
	}
}
