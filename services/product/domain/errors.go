package domain

import "errors"

// Sentinel errors for the product domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductAlreadyExists indicates a product with the same unique constraint already exists.
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrInvalidProduct indicates one or more product fields violate domain constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrPermissionDenied indicates the actor lacks the elevated role required
	// for create, edit, delete, and import operations.
	ErrPermissionDenied = errors.New("permission denied")
)
