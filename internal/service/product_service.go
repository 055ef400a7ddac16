package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
)

// ProductInput carries product fields as received. A nil field was not supplied.
type ProductInput struct {
	Name       *string
	Price      *float64
	CategoryID *int64
}

// ProductService coordinates product CRUD backed by a repository.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	// Update changes only the supplied fields.
	Update(ctx context.Context, id int64, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	product, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, mapProductErr(err)
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if in.Name == nil {
		return nil, invalid("name", "Name is required")
	}
	if in.Price == nil {
		return nil, invalid("price", "Price must be a positive number")
	}
	if in.CategoryID == nil {
		return nil, invalid("category_id", "Category ID must be a positive integer")
	}

	patch, err := validateProduct(in)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:       *patch.Name,
		Price:      *patch.Price,
		CategoryID: *patch.CategoryID,
	}
	if _, err := s.products.Create(ctx, product); err != nil {
		return nil, mapProductErr(err)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id int64, in ProductInput) (*domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	patch, err := validateProduct(in)
	if err != nil {
		return nil, err
	}

	product, err := s.products.Patch(ctx, id, patch)
	if err != nil {
		return nil, mapProductErr(err)
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	return mapProductErr(s.products.Delete(ctx, id))
}

// validateProduct checks every supplied field in name, price, category_id order.
func validateProduct(in ProductInput) (domain.ProductPatch, error) {
	var patch domain.ProductPatch

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return patch, invalid("name", "Name is required")
		}
		patch.Name = &name
	}
	if in.Price != nil {
		price := *in.Price
		if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
			return patch, invalid("price", "Price must be a positive number")
		}
		patch.Price = &price
	}
	if in.CategoryID != nil {
		categoryID := *in.CategoryID
		if categoryID <= 0 {
			return patch, invalid("category_id", "Category ID must be a positive integer")
		}
		patch.CategoryID = &categoryID
	}

	return patch, nil
}

func mapProductErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrProductNotFound
	case errors.Is(err, repository.ErrReferenceMissing):
		return ErrCategoryMissing
	default:
		return err
	}
}
