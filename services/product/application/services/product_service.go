package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/stockroom/pkg/auth"
	pkgcache "github.com/ghuser/stockroom/pkg/cache"
	productdomain "github.com/ghuser/stockroom/services/product/domain"
	"github.com/ghuser/stockroom/services/product/domain/models"
	"github.com/ghuser/stockroom/services/product/domain/repositories"
	domainsvcs "github.com/ghuser/stockroom/services/product/domain/services"
)

// ProductFields is the validated field set for create and update operations.
// Coercion from wire/CSV values happens before this struct is built.
type ProductFields struct {
	Title       string
	Description string
	Category    string
	Price       float64
	Quantity    int
	Image       string
}

// ProductService orchestrates creation, retrieval, and mutation of Products.
// Event publishing is handled by the repository layer (outbox pattern).
// Single-record reads are served from Redis cache when available.
//
// Mutations require an elevated-privilege actor; the gate lives here rather
// than only in HTTP middleware so the importer and bulk deleter inherit it.
type ProductService struct {
	repo  repositories.ProductRepository
	cache *pkgcache.ProductCache
}

// NewProductService returns a ProductService wired with the given repository and cache.
func NewProductService(repo repositories.ProductRepository, productCache *pkgcache.ProductCache) *ProductService {
	return &ProductService{repo: repo, cache: productCache}
}

// Create validates and persists a Product owned by the acting user.
// The repository publishes ProductCreatedEvent transactionally.
func (s *ProductService) Create(ctx context.Context, actor auth.Actor, fields ProductFields) (*models.Product, error) {
	if !actor.IsAdmin() {
		return nil, productdomain.ErrPermissionDenied
	}

	product, err := buildProduct(actor.ID, fields)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	return product, nil
}

// GetByID retrieves a Product using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToProduct(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to Postgres.
			_ = err
		}
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), productToCached(product))
		}()
	}

	return product, nil
}

// Search returns the full search-scoped raw collection for term, in
// insertion order. The list-view pipeline applies every other transform.
func (s *ProductService) Search(ctx context.Context, term string) ([]*models.Product, error) {
	products, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// Update validates and persists field changes to an existing Product,
// then drops the cached read model so the next read refetches.
func (s *ProductService) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, fields ProductFields) (*models.Product, error) {
	if !actor.IsAdmin() {
		return nil, productdomain.ErrPermissionDenied
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if err := applyFields(product, fields); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return product, nil
}

// Delete removes a product by ID and drops its cached read model.
// Returns ErrProductNotFound if no matching product exists.
func (s *ProductService) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return productdomain.ErrPermissionDenied
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return productdomain.ErrProductNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}

// buildProduct constructs and validates a Product aggregate from raw fields.
// All ingestion paths (HTTP create, CSV import) funnel through here so no
// loosely-typed value survives past this boundary.
func buildProduct(ownerID uuid.UUID, fields ProductFields) (*models.Product, error) {
	title, err := models.NewTitle(fields.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}

	category, err := models.ParseCategory(fields.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}

	product, err := models.NewProduct(ownerID, title, fields.Description, category, fields.Price, fields.Quantity, fields.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}

	if err := domainsvcs.ValidateProductForSave(product); err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}

	return product, nil
}

// applyFields validates fields and writes them onto an existing aggregate.
func applyFields(product *models.Product, fields ProductFields) error {
	title, err := models.NewTitle(fields.Title)
	if err != nil {
		return fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}
	category, err := models.ParseCategory(fields.Category)
	if err != nil {
		return fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}
	if fields.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", productdomain.ErrInvalidProduct)
	}
	if fields.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", productdomain.ErrInvalidProduct)
	}

	product.Title = title
	product.Description = fields.Description
	product.Category = category
	product.Price = fields.Price
	product.Quantity = fields.Quantity
	if fields.Image != "" {
		product.Image = fields.Image
	}

	if err := domainsvcs.ValidateProductForSave(product); err != nil {
		return fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}
	return nil
}

func cachedToProduct(cached *pkgcache.CachedProduct) *models.Product {
	return &models.Product{
		ID:          cached.ID,
		OwnerID:     cached.OwnerID,
		Title:       models.Title(cached.Title),
		Description: cached.Description,
		Category:    models.Category(cached.Category),
		Price:       cached.Price,
		Quantity:    cached.Quantity,
		Image:       cached.Image,
		CreatedAt:   cached.CreatedAt,
	}
}

func productToCached(product *models.Product) *pkgcache.CachedProduct {
	return &pkgcache.CachedProduct{
		ID:          product.ID,
		OwnerID:     product.OwnerID,
		Title:       product.Title.String(),
		Description: product.Description,
		Category:    product.Category.String(),
		Price:       product.Price,
		Quantity:    product.Quantity,
		Image:       product.Image,
		CreatedAt:   product.CreatedAt,
	}
}
