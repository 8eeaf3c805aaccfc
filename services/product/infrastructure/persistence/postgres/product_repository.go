package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	productdomain "github.com/ghuser/stockroom/services/product/domain"
	domainevents "github.com/ghuser/stockroom/services/product/domain/events"
	"github.com/ghuser/stockroom/services/product/domain/models"
	"github.com/ghuser/stockroom/services/product/infrastructure/persistence/postgres/db"
)

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given connection
// pool and event bus. The bus publishes ProductCreated/ProductDeleted events
// in the same transaction as the write (outbox pattern).
func NewProductRepository(database *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: database, bus: bus}
}

// Save persists a new Product and publishes a ProductCreatedEvent within the same transaction.
// Returns ErrProductAlreadyExists on unique constraint violations.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertProduct(ctx, db.InsertProductParams{
			ID:          product.ID,
			OwnerID:     product.OwnerID,
			Title:       product.Title.String(),
			Description: product.Description,
			Category:    product.Category.String(),
			Price:       product.Price,
			Quantity:    int32(product.Quantity),
			Image:       product.Image,
			CreatedAt:   product.CreatedAt,
			UpdatedAt:   product.UpdatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return productdomain.ErrProductAlreadyExists
			}
			return fmt.Errorf("insert product: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, product); err != nil {
				return fmt.Errorf("publish product created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Product by ID. Returns ErrProductNotFound if not found.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	q := db.New(r.db.DB())
	row, err := q.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, productdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return rowToProduct(row), nil
}

// Search retrieves every product matching term on title or description, in
// insertion order. An empty term matches everything.
func (r *ProductRepository) Search(ctx context.Context, term string) ([]*models.Product, error) {
	q := db.New(r.db.DB())
	rows, err := q.SearchProducts(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	products := make([]*models.Product, len(rows))
	for i, row := range rows {
		products[i] = rowToProduct(row)
	}
	return products, nil
}

// Update persists field changes to an existing Product.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now().UTC()
	q := db.New(r.db.DB())
	if err := q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:          product.ID,
		Title:       product.Title.String(),
		Description: product.Description,
		Category:    product.Category.String(),
		Price:       product.Price,
		Quantity:    int32(product.Quantity),
		Image:       product.Image,
		UpdatedAt:   product.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by ID and publishes a ProductDeletedEvent within
// the same transaction.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.DeleteProduct(ctx, id); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		if r.bus != nil {
			if err := r.publishDeleted(tx, id); err != nil {
				return fmt.Errorf("publish product deleted: %w", err)
			}
		}
		return nil
	})
}

// Exists reports whether a product with the given ID exists.
func (r *ProductRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := db.New(r.db.DB())
	exists, err := q.ProductExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return exists, nil
}

func (r *ProductRepository) publishCreated(tx *sql.Tx, product *models.Product) error {
	event := domainevents.ProductCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ProductID:   product.ID,
		OwnerID:     product.OwnerID,
		Title:       product.Title.String(),
		Description: product.Description,
		Category:    product.Category.String(),
		Price:       product.Price,
		Quantity:    product.Quantity,
		Image:       product.Image,
		OccurredAt:  product.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicProductCreated, event, event.EventID)
}

func (r *ProductRepository) publishDeleted(tx *sql.Tx, productID uuid.UUID) error {
	event := domainevents.ProductDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  productID,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicProductDeleted, event, event.EventID)
}

func (r *ProductRepository) publish(tx *sql.Tx, topic string, event any, eventID uuid.UUID) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// rowToProduct maps a db.ProductProduct to a domain models.Product.
func rowToProduct(row db.ProductProduct) *models.Product {
	return &models.Product{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Title:       models.Title(row.Title),
		Description: row.Description,
		Category:    models.Category(row.Category),
		Price:       row.Price,
		Quantity:    int(row.Quantity),
		Image:       row.Image,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
