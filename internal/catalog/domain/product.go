// Package domain defines the core catalog entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/narendran4787/BritTechDemo/internal/errors"
)

// Product represents an item in the catalog.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	// PriceCents stores the price in the smallest currency unit to avoid
	// floating point rounding.
	PriceCents int64
	Stock      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Domain-specific errors for catalog operations.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.Wrap(errors.ErrNotFound, "product not found")

	// ErrProductAlreadyExists indicates a product with the same name already exists.
	ErrProductAlreadyExists = errors.Wrap(errors.ErrConflict, "product already exists")
)
