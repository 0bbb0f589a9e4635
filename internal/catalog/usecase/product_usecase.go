package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/narendran4787/BritTechDemo/internal/catalog/domain"
	"github.com/narendran4787/BritTechDemo/internal/database"
	appValidation "github.com/narendran4787/BritTechDemo/internal/validation"
)

// productUseCase handles catalog business logic.
type productUseCase struct {
	txManager   database.TxManager
	productRepo ProductRepository
}

// NewProductUseCase creates a new catalog use case.
func NewProductUseCase(
	txManager database.TxManager,
	productRepo ProductRepository,
) UseCase {
	return &productUseCase{
		txManager:   txManager,
		productRepo: productRepo,
	}
}

// validateProductInput validates shared create/update fields.
func validateProductInput(name, description string, priceCents int64, stock int) error {
	err := validation.Errors{
		"name": validation.Validate(name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		"description": validation.Validate(description,
			validation.Length(0, 2000).Error("description must be at most 2000 characters"),
		),
		"price_cents": validation.Validate(priceCents,
			validation.Min(int64(0)).Error("price_cents must not be negative"),
		),
		"stock": validation.Validate(stock,
			validation.Min(0).Error("stock must not be negative"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// Create validates the input and persists a new product.
func (uc *productUseCase) Create(
	ctx context.Context,
	input CreateProductInput,
) (*domain.Product, error) {
	if err := validateProductInput(input.Name, input.Description, input.PriceCents, input.Stock); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		PriceCents:  input.PriceCents,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.productRepo.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// Get retrieves a product by ID.
func (uc *productUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// List retrieves a page of products ordered by creation time.
func (uc *productUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Product, error) {
	return uc.productRepo.List(ctx, offset, limit)
}

// Update validates the input and applies it to an existing product.
func (uc *productUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateProductInput,
) (*domain.Product, error) {
	if err := validateProductInput(input.Name, input.Description, input.PriceCents, input.Stock); err != nil {
		return nil, err
	}

	var updated *domain.Product
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		product, err := uc.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		product.Name = strings.TrimSpace(input.Name)
		product.Description = strings.TrimSpace(input.Description)
		product.PriceCents = input.PriceCents
		product.Stock = input.Stock
		product.UpdatedAt = time.Now().UTC()

		if err := uc.productRepo.Update(ctx, product); err != nil {
			return err
		}

		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a product by ID.
func (uc *productUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.productRepo.Delete(ctx, id)
	})
}
