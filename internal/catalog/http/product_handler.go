// Package http provides HTTP handlers for the catalog API.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/narendran4787/BritTechDemo/internal/catalog/http/dto"
	catalogUseCase "github.com/narendran4787/BritTechDemo/internal/catalog/usecase"
	"github.com/narendran4787/BritTechDemo/internal/httputil"
)

// ProductHandler handles HTTP requests for catalog products.
type ProductHandler struct {
	productUseCase catalogUseCase.UseCase
	logger         *slog.Logger
}

// NewProductHandler creates a new product handler with required dependencies.
func NewProductHandler(
	productUseCase catalogUseCase.UseCase,
	logger *slog.Logger,
) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// parseProductID extracts and validates the product ID path parameter.
func parseProductID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid product id: must be a valid UUID")
	}
	return id, nil
}

// CreateHandler creates a new product.
// POST /v1/products - Requires authentication.
// Returns 201 Created with the product, 422 on validation failure,
// 409 when the name is already taken.
func (h *ProductHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateProductRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	product, err := h.productUseCase.Create(c.Request.Context(), catalogUseCase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// GetHandler retrieves a product by ID.
// GET /v1/products/:id - Requires authentication.
// Returns 200 OK with the product, 404 when it does not exist.
func (h *ProductHandler) GetHandler(c *gin.Context) {
	id, err := parseProductID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	product, err := h.productUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// ListHandler retrieves a page of products.
// GET /v1/products - Requires authentication. Supports offset/limit pagination.
// Returns 200 OK with the page.
func (h *ProductHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	products, err := h.productUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductListResponse(products, offset, limit))
}

// UpdateHandler updates an existing product.
// PUT /v1/products/:id - Requires authentication.
// Returns 200 OK with the updated product, 404 when it does not exist,
// 422 on validation failure.
func (h *ProductHandler) UpdateHandler(c *gin.Context) {
	id, err := parseProductID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.UpdateProductRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	product, err := h.productUseCase.Update(c.Request.Context(), id, catalogUseCase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// DeleteHandler removes a product by ID.
// DELETE /v1/products/:id - Requires authentication.
// Returns 204 No Content on success, 404 when it does not exist.
func (h *ProductHandler) DeleteHandler(c *gin.Context) {
	id, err := parseProductID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.productUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
