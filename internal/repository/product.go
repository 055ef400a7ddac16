package repository

import (
	"context"

	"catalog-api/internal/domain"
)

// ProductRepository exposes persistence operations for products.
type ProductRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, product *domain.Product) (int64, error)
	// Patch applies the non-nil fields of patch and returns the resulting row.
	Patch(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
