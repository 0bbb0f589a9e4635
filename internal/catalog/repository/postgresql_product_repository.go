// Package repository provides data persistence implementations for catalog entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/narendran4787/BritTechDemo/internal/catalog/domain"
	"github.com/narendran4787/BritTechDemo/internal/database"

	apperrors "github.com/narendran4787/BritTechDemo/internal/errors"
)

// PostgreSQLProductRepository handles product persistence for PostgreSQL
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// NewPostgreSQLProductRepository creates a new PostgreSQLProductRepository
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{
		db: db,
	}
}

// Create inserts a new product
func (r *PostgreSQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (id, name, description, price_cents, stock, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(ctx, query,
		product.ID, product.Name, product.Description,
		product.PriceCents, product.Stock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		// Check for unique constraint violation (duplicate name)
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// GetByID retrieves a product by ID
func (r *PostgreSQLProductRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Product, error) {
	var product domain.Product
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, price_cents, stock, created_at, updated_at
			  FROM products WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Description,
		&product.PriceCents, &product.Stock, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product by id")
	}

	return &product, nil
}

// List retrieves a page of products ordered by creation time
func (r *PostgreSQLProductRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, price_cents, stock, created_at, updated_at
			  FROM products ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Description,
			&product.PriceCents, &product.Stock, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		products = append(products, &product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}

	return products, nil
}

// Update modifies an existing product
func (r *PostgreSQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE products SET name = $2, description = $3, price_cents = $4, stock = $5, updated_at = $6
			  WHERE id = $1`

	result, err := querier.ExecContext(ctx, query,
		product.ID, product.Name, product.Description,
		product.PriceCents, product.Stock, product.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update product")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID
func (r *PostgreSQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM products WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
