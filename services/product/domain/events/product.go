package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the product bounded context.
const (
	// TopicProductCreated is published when a Product is created.
	TopicProductCreated = "product.created"

	// TopicProductDeleted is published when a Product is deleted.
	TopicProductDeleted = "product.deleted"
)

// ProductCreatedEvent is published after a new Product is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicProductCreated).
type ProductCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	ProductID   uuid.UUID `json:"product_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Image       string    `json:"image"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ProductDeletedEvent is published after a Product is removed.
// The worker drops the Redis read model for the product on receipt.
type ProductDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ProductID  uuid.UUID `json:"product_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
