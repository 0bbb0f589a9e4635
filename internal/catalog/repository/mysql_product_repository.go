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

// MySQLProductRepository handles product persistence for MySQL
type MySQLProductRepository struct {
	db *sql.DB
}

// NewMySQLProductRepository creates a new MySQLProductRepository
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{
		db: db,
	}
}

// Create inserts a new product
func (r *MySQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (id, name, description, price_cents, stock, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		uuidBytes, product.Name, product.Description,
		product.PriceCents, product.Stock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		// Check for unique constraint violation (duplicate name)
		if isMySQLUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// GetByID retrieves a product by ID
func (r *MySQLProductRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Product, error) {
	var product domain.Product
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, price_cents, stock, created_at, updated_at
			  FROM products WHERE id = ?`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var idBytes []byte
	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
		&idBytes, &product.Name, &product.Description,
		&product.PriceCents, &product.Stock, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product by id")
	}

	// Convert bytes back to UUID
	if err := product.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &product, nil
}

// List retrieves a page of products ordered by creation time
func (r *MySQLProductRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, price_cents, stock, created_at, updated_at
			  FROM products ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		var idBytes []byte
		if err := rows.Scan(
			&idBytes, &product.Name, &product.Description,
			&product.PriceCents, &product.Stock, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		if err := product.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		products = append(products, &product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}

	return products, nil
}

// Update modifies an existing product
func (r *MySQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE products SET name = ?, description = ?, price_cents = ?, stock = ?, updated_at = ?
			  WHERE id = ?`

	uuidBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		product.Name, product.Description, product.PriceCents,
		product.Stock, product.UpdatedAt, uuidBytes,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
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
func (r *MySQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM products WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
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

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
