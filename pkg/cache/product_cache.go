package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ProductCacheTTL is the time-to-live for cached products.
	ProductCacheTTL = 24 * time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash. The image payload is cached as-is
// (URL or base64 data) since single-product views render it directly.
type CachedProduct struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductCache provides structured read/write operations for product cache entries.
// Key format: "product:{productID}"
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a new ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, productID uuid.UUID) (*CachedProduct, error) {
	key := c.key(productID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	ownerID, err := uuid.Parse(vals["owner_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_id: %w", err)
	}
	price, err := strconv.ParseFloat(vals["price"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	quantity, err := strconv.Atoi(vals["quantity"])
	if err != nil {
		return nil, fmt.Errorf("cache parse quantity: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedProduct{
		ID:          id,
		OwnerID:     ownerID,
		Title:       vals["title"],
		Description: vals["description"],
		Category:    vals["category"],
		Price:       price,
		Quantity:    quantity,
		Image:       vals["image"],
		CreatedAt:   createdAt,
	}, nil
}

// Set writes a cached product as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ProductCache) Set(ctx context.Context, product *CachedProduct) error {
	key := c.key(product.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", product.ID.String(),
		"owner_id", product.OwnerID.String(),
		"title", product.Title,
		"description", product.Description,
		"category", product.Category,
		"price", strconv.FormatFloat(product.Price, 'f', -1, 64),
		"quantity", strconv.Itoa(product.Quantity),
		"image", product.Image,
		"created_at", product.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ProductCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product. Called after updates and deletes so the
// next read falls through to Postgres.
func (c *ProductCache) Delete(ctx context.Context, productID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "product:{productID}"
func (c *ProductCache) key(productID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", productCacheKeyPrefix, productID)
}
