package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is the core aggregate for this bounded context.
type Product struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // actor who created the record; attached at creation time
	Title       Title
	Description string
	Category    Category
	Price       float64
	Quantity    int
	Image       string // URL or inlined base64 data payload, stored opaque
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct constructs a valid Product aggregate with generated ID and current timestamp.
func NewProduct(ownerID uuid.UUID, title Title, description string, category Category, price float64, quantity int, image string) (*Product, error) {
	if price < 0 {
		return nil, fmt.Errorf("price must not be negative, got %v", price)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative, got %d", quantity)
	}
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Category:    category,
		Price:       price,
		Quantity:    quantity,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
