package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/product/domain/models"
)

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ProductRepository interface {
	Save(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// Search retrieves every product whose title or description matches term,
	// in insertion order. An empty term matches all products. View transforms
	// (category, price band, sort, pagination) are applied by the list-view
	// pipeline, not here: the pipeline needs the full search-scoped set.
	Search(ctx context.Context, term string) ([]*models.Product, error)

	// Update persists changes to an existing Product.
	Update(ctx context.Context, product *models.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether a product with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
