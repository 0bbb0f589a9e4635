// Package usecase implements the catalog business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/narendran4787/BritTechDemo/internal/catalog/domain"
)

// CreateProductInput contains the input data for product creation.
type CreateProductInput struct {
	Name        string
	Description string
	PriceCents  int64
	Stock       int
}

// UpdateProductInput contains the input data for product updates.
type UpdateProductInput struct {
	Name        string
	Description string
	PriceCents  int64
	Stock       int
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UseCase defines the catalog business operations.
type UseCase interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
