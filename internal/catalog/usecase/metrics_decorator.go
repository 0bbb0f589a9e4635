package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/narendran4787/BritTechDemo/internal/catalog/domain"
	"github.com/narendran4787/BritTechDemo/internal/metrics"
)

// productUseCaseWithMetrics decorates the catalog UseCase with metrics instrumentation.
type productUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewProductUseCaseWithMetrics wraps a catalog UseCase with metrics recording.
func NewProductUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &productUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *productUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "catalog", operation, status)
	p.metrics.RecordDuration(ctx, "catalog", operation, time.Since(start), status)
}

// Create records metrics for product creation operations.
func (p *productUseCaseWithMetrics) Create(
	ctx context.Context,
	input CreateProductInput,
) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Create(ctx, input)
	p.record(ctx, "product_create", start, err)
	return product, err
}

// Get records metrics for product retrieval operations.
func (p *productUseCaseWithMetrics) Get(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Get(ctx, id)
	p.record(ctx, "product_get", start, err)
	return product, err
}

// List records metrics for product list operations.
func (p *productUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Product, error) {
	start := time.Now()
	products, err := p.next.List(ctx, offset, limit)
	p.record(ctx, "product_list", start, err)
	return products, err
}

// Update records metrics for product update operations.
func (p *productUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateProductInput,
) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Update(ctx, id, input)
	p.record(ctx, "product_update", start, err)
	return product, err
}

// Delete records metrics for product deletion operations.
func (p *productUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := p.next.Delete(ctx, id)
	p.record(ctx, "product_delete", start, err)
	return err
}
