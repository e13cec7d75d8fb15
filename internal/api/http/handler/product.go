package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/markethub/catalog-server/internal/logger"
	"github.com/markethub/catalog-server/internal/model"
)

// ProductService defines catalog operations.
type ProductService interface {
	List(ctx context.Context, filter model.ProductFilter) (model.ProductPage, error)
	Get(ctx context.Context, id uuid.UUID) (model.Product, error)
	Create(ctx context.Context, principal model.User, params model.CreateProductParams) (model.Product, error)
	Update(ctx context.Context, principal model.User, id uuid.UUID, params model.UpdateProductParams) (model.Product, error)
	Delete(ctx context.Context, principal model.User, id uuid.UUID) error
	SetImage(ctx context.Context, principal model.User, id uuid.UUID, reader io.Reader) error
	GetImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, error)
}

// CreateProductRequest represents the create-product payload.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"required,gte=0"`
}

// UpdateProductRequest represents a partial product update. Absent fields
// are left unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
}

// ProductResponse is the public view of a catalog entry.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductPageResponse is one page of products with pagination totals.
type ProductPageResponse struct {
	Content       []ProductResponse `json:"content"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	Size          int               `json:"size"`
	Number        int               `json:"number"`
}

func newProductResponse(product model.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		UserID:      product.OwnerID.String(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// Product handles HTTP endpoints for the catalog.
type Product struct {
	productService ProductService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewProduct creates a new Product handler.
func NewProduct(productService ProductService, contextManager model.ContextManager, logger *logger.Logger) *Product {
	return &Product{
		productService: productService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns a page of products, optionally filtered by owner.
func (h *Product) List(c *gin.Context) {
	var filter model.ProductFilter

	if raw := c.Query("userId"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			respondErrorStatus(c, http.StatusBadRequest, "userId must be a valid UUID")
			return
		}
		filter.OwnerID = &ownerID
	}

	// Malformed numbers fall back to defaults rather than failing the
	// request.
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	filter.Size, _ = strconv.Atoi(c.DefaultQuery("size", "0"))

	page, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	content := make([]ProductResponse, 0, len(page.Content))
	for _, product := range page.Content {
		content = append(content, newProductResponse(product))
	}

	c.JSON(http.StatusOK, ProductPageResponse{
		Content:       content,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Size:          page.Size,
		Number:        page.Number,
	})
}

// Get returns a single product by id.
func (h *Product) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorStatus(c, http.StatusNotFound, "resource not found")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newProductResponse(product))
}

// Create adds a product owned by the caller.
func (h *Product) Create(c *gin.Context) {
	principal, ok := h.contextManager.Principal(c.Request.Context())
	if !ok {
		respondErrorStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), principal, model.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, newProductResponse(product))
}

// Update applies a partial update to a product.
func (h *Product) Update(c *gin.Context) {
	principal, ok := h.contextManager.Principal(c.Request.Context())
	if !ok {
		respondErrorStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorStatus(c, http.StatusNotFound, "resource not found")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), principal, id, model.UpdateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newProductResponse(product))
}

// Delete removes a product and its stored image.
func (h *Product) Delete(c *gin.Context) {
	principal, ok := h.contextManager.Principal(c.Request.Context())
	if !ok {
		respondErrorStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorStatus(c, http.StatusNotFound, "resource not found")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), principal, id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetImage stores the request body as the product image.
func (h *Product) SetImage(c *gin.Context) {
	principal, ok := h.contextManager.Principal(c.Request.Context())
	if !ok {
		respondErrorStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorStatus(c, http.StatusNotFound, "resource not found")
		return
	}

	if err := h.productService.SetImage(c.Request.Context(), principal, id, c.Request.Body); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetImage streams the stored product image.
func (h *Product) GetImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorStatus(c, http.StatusNotFound, "resource not found")
		return
	}

	reader, err := h.productService.GetImage(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		h.logger.Error("Product handler: failed to stream image", "id", id.String(), "error", err.Error())
	}
}
