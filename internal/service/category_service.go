package service

import (
	"context"
	"errors"
	"strings"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
)

// CategoryService coordinates category CRUD backed by a repository.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, mapCategoryErr(err)
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	name, err := categoryName(name)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{Name: name}
	if _, err := s.categories.Create(ctx, category); err != nil {
		return nil, mapCategoryErr(err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	name, err := categoryName(name)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{ID: id, Name: name}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, mapCategoryErr(err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	return mapCategoryErr(s.categories.Delete(ctx, id))
}

func categoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "Name is required")
	}
	return name, nil
}

func mapCategoryErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repository.ErrConflict):
		return ErrCategoryExists
	case errors.Is(err, repository.ErrReferenced):
		return ErrCategoryInUse
	default:
		return err
	}
}
