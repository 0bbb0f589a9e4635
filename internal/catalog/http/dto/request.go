// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/narendran4787/BritTechDemo/internal/validation"
)

// CreateProductRequest contains the payload for product creation.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int    `json:"stock"`
}

// Validate checks if the create request is structurally valid.
func (r *CreateProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Length(0, 2000),
		),
		validation.Field(&r.PriceCents,
			validation.Min(int64(0)),
		),
		validation.Field(&r.Stock,
			validation.Min(0),
		),
	)
}

// UpdateProductRequest contains the payload for product updates.
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int    `json:"stock"`
}

// Validate checks if the update request is structurally valid.
func (r *UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Length(0, 2000),
		),
		validation.Field(&r.PriceCents,
			validation.Min(int64(0)),
		),
		validation.Field(&r.Stock,
			validation.Min(0),
		),
	)
}
