// Package services contains stateless domain services for the product bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/product/domain/models"
)

// ValidateTitle enforces business rules for Title beyond the structural
// constraints enforced by the Title constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateTitle(title models.Title) error {
	s := title.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("product title must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("product title must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("product title must not contain control characters")
		}
	}

	return nil
}

// ValidateProductForSave performs cross-field validation on a fully-constructed
// Product aggregate before it is persisted. It assumes the Product was built via
// models.NewProduct (so structural constraints are already satisfied) and
// adds business-level checks that span multiple fields.
func ValidateProductForSave(product *models.Product) error {
	if product == nil {
		return fmt.Errorf("product cannot be nil")
	}

	if err := ValidateTitle(product.Title); err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}

	if _, err := models.ParseCategory(product.Category.String()); err != nil {
		return fmt.Errorf("invalid category: %w", err)
	}

	if product.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}

	if product.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}

	if product.OwnerID == uuid.Nil {
		return fmt.Errorf("owner_id must be set")
	}

	if product.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	return nil
}
