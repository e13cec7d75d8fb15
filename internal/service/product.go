package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/markethub/catalog-server/internal/logger"
	"github.com/markethub/catalog-server/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Product implements catalog management. Reads are public; mutations
// require the owner or an admin.
type Product struct {
	productStore model.ProductStore
	storage      model.Storage
	policy       *Policy
	logger       *logger.Logger
}

func NewProduct(
	productStore model.ProductStore,
	storage model.Storage,
	policy *Policy,
	logger *logger.Logger,
) *Product {
	return &Product{
		productStore: productStore,
		storage:      storage,
		policy:       policy,
		logger:       logger,
	}
}

// List returns a page of products, optionally filtered by owner. Page
// is zero-based; size is clamped to [1, 100].
func (s *Product) List(ctx context.Context, filter model.ProductFilter) (model.ProductPage, error) {
	if filter.Size < 1 {
		if filter.Size == 0 {
			filter.Size = defaultPageSize
		} else {
			filter.Size = 1
		}
	}
	if filter.Size > maxPageSize {
		filter.Size = maxPageSize
	}
	if filter.Page < 0 {
		filter.Page = 0
	}

	products, total, err := s.productStore.List(ctx, filter)
	if err != nil {
		return model.ProductPage{}, fmt.Errorf("failed to list products: %w", err)
	}

	totalPages := int(total) / filter.Size
	if int(total)%filter.Size != 0 {
		totalPages++
	}

	return model.ProductPage{
		Content:       products,
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          filter.Size,
		Number:        filter.Page,
	}, nil
}

// Get returns a product by id. Public.
func (s *Product) Get(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	return product, nil
}

// Create creates a product owned by the principal.
func (s *Product) Create(ctx context.Context, principal model.User, params model.CreateProductParams) (model.Product, error) {
	now := time.Now()
	product, err := s.productStore.Create(ctx, model.Product{
		ID:          uuid.New(),
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Quantity:    params.Quantity,
		OwnerID:     principal.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product service: product created",
		"product_id", product.ID,
		"owner_id", product.OwnerID)

	return product, nil
}

// Update applies a partial update. Owner or admin only.
func (s *Product) Update(ctx context.Context, principal model.User, id uuid.UUID, params model.UpdateProductParams) (model.Product, error) {
	if params.Empty() {
		return model.Product{}, model.ErrEmptyUpdate
	}

	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	if !s.policy.IsOwnerOrAdmin(principal, product.OwnerID) {
		return model.Product{}, model.ErrForbidden
	}

	if params.Name != nil {
		product.Name = *params.Name
	}
	if params.Description != nil {
		product.Description = *params.Description
	}
	if params.Price != nil {
		product.Price = *params.Price
	}
	if params.Quantity != nil {
		product.Quantity = *params.Quantity
	}

	product, err = s.productStore.Update(ctx, product)
	if err != nil {
		return model.Product{}, err
	}

	s.logger.Info("Product service: product updated", "product_id", product.ID)

	return product, nil
}

// Delete removes a product. Owner or admin only. A stored image is
// removed best-effort after the row; a leftover object is logged, not
// fatal.
func (s *Product) Delete(ctx context.Context, principal model.User, id uuid.UUID) error {
	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.policy.IsOwnerOrAdmin(principal, product.OwnerID) {
		return model.ErrForbidden
	}

	if err := s.productStore.Delete(ctx, id); err != nil {
		return err
	}

	if product.ImageKey != "" {
		if err := s.storage.Delete(ctx, product.ImageKey); err != nil {
			s.logger.Error("Product service: failed to delete product image",
				"product_id", id,
				"key", product.ImageKey,
				"error", err.Error())
		}
	}

	s.logger.Info("Product service: product deleted", "product_id", id)

	return nil
}

// SetImage stores the image for a product and records its object key.
// Owner or admin only.
func (s *Product) SetImage(ctx context.Context, principal model.User, id uuid.UUID, reader io.Reader) error {
	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.policy.IsOwnerOrAdmin(principal, product.OwnerID) {
		return model.ErrForbidden
	}

	key := imageKey(id)
	if err := s.storage.Upload(ctx, key, reader); err != nil {
		return fmt.Errorf("failed to upload product image: %w", err)
	}

	if product.ImageKey != key {
		product.ImageKey = key
		if _, err := s.productStore.Update(ctx, product); err != nil {
			return fmt.Errorf("failed to record product image key: %w", err)
		}
	}

	s.logger.Info("Product service: product image stored", "product_id", id)

	return nil
}

// GetImage streams the stored image of a product. Public; products
// without an image resolve to not found.
func (s *Product) GetImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.ImageKey == "" {
		return nil, model.ErrNotFound
	}

	reader, err := s.storage.Download(ctx, product.ImageKey)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to download product image: %w", err)
	}

	return reader, nil
}

func imageKey(id uuid.UUID) string {
	return fmt.Sprintf("products/%s/image", id)
}
