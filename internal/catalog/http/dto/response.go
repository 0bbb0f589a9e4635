package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/narendran4787/BritTechDemo/internal/catalog/domain"
)

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProductResponse creates a ProductResponse from a domain product.
func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductListResponse represents a page of products in API responses.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
}

// NewProductListResponse creates a ProductListResponse from domain products.
func NewProductListResponse(products []*domain.Product, offset, limit int) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, NewProductResponse(product))
	}
	return ProductListResponse{
		Products: items,
		Offset:   offset,
		Limit:    limit,
	}
}
