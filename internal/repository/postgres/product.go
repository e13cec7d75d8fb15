package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/markethub/catalog-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	db *Connection
}

func NewProductRepository(db *Connection) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	var product model.Product
	query := `SELECT id, name, description, price, quantity, owner_id, image_key, created_at, updated_at
			  FROM products WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.Quantity,
		&product.OwnerID, &product.ImageKey, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	countQuery := `SELECT count(*) FROM products`
	listQuery := `SELECT id, name, description, price, quantity, owner_id, image_key, created_at, updated_at
				  FROM products`

	args := []any{}
	if filter.OwnerID != nil {
		countQuery += ` WHERE owner_id = $1`
		listQuery += ` WHERE owner_id = $1`
		args = append(args, *filter.OwnerID)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	listQuery += fmt.Sprintf(` ORDER BY created_at LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Size, filter.Page*filter.Size)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var product model.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Description, &product.Price, &product.Quantity,
			&product.OwnerID, &product.ImageKey, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, total, nil
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	query := `INSERT INTO products (id, name, description, price, quantity, owner_id, image_key, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, name, description, price, quantity, owner_id, image_key, created_at, updated_at`

	var saved model.Product
	err := r.db.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Quantity,
		product.OwnerID, product.ImageKey, product.CreatedAt, product.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Name, &saved.Description, &saved.Price, &saved.Quantity,
		&saved.OwnerID, &saved.ImageKey, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return saved, nil
}

func (r *ProductRepository) Update(ctx context.Context, product model.Product) (model.Product, error) {
	query := `UPDATE products SET name = $2, description = $3, price = $4, quantity = $5, image_key = $6, updated_at = now()
			  WHERE id = $1
			  RETURNING id, name, description, price, quantity, owner_id, image_key, created_at, updated_at`

	var saved model.Product
	err := r.db.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Quantity, product.ImageKey,
	).Scan(
		&saved.ID, &saved.Name, &saved.Description, &saved.Price, &saved.Quantity,
		&saved.OwnerID, &saved.ImageKey, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return saved, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *ProductRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("failed to delete products by owner: %w", err)
	}

	return nil
}
