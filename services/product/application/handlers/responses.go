package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/product/domain/models"
)

// ProductResponse is the wire shape of one product record.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	OwnerID     uuid.UUID `json:"owner_id"    example:"550e8400-e29b-41d4-a716-446655440000"`
	Title       string    `json:"title"       example:"Wireless Mouse"`
	Description string    `json:"description" example:"2.4 GHz wireless mouse"`
	Category    string    `json:"category"    example:"electronics"`
	Price       float64   `json:"price"       example:"24.99"`
	Quantity    int       `json:"quantity"    example:"12"`
	Image       string    `json:"image"       example:"https://example.com/mouse.jpg"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at"  example:"2024-01-15T10:30:00Z"`
} // @name ProductResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title.String(),
		Description: p.Description,
		Category:    p.Category.String(),
		Price:       p.Price,
		Quantity:    p.Quantity,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
