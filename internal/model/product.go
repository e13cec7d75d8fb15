package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductStore defines persistence operations for products.
type ProductStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	List(ctx context.Context, filter ProductFilter) ([]Product, int64, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, product Product) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error
}

// Product represents a catalog entry owned by a user.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Quantity    int
	OwnerID     uuid.UUID
	ImageKey    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter selects a page of products, optionally restricted to one
// owner. Page is zero-based; Size is expected to be clamped by the caller.
type ProductFilter struct {
	OwnerID *uuid.UUID
	Page    int
	Size    int
}

// CreateProductParams contains parameters to create a product.
type CreateProductParams struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
}

// UpdateProductParams carries a partial product update. Nil fields are
// left unchanged.
type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
}

// Empty reports whether no field is set.
func (p UpdateProductParams) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Quantity == nil
}

// ProductPage is a page of products with pagination totals.
type ProductPage struct {
	Content       []Product
	TotalElements int64
	TotalPages    int
	Size          int
	Number        int
}
