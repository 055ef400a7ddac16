package service

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
)

type fakeUsers struct {
	byEmail map[string]*domain.User
	nextID  int64
	err     error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*domain.User{}}
}

func (f *fakeUsers) Init(context.Context) error { return nil }

func (f *fakeUsers) Create(_ context.Context, user *domain.User) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return 0, fmt.Errorf("insert user: %w", repository.ErrConflict)
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.byEmail[user.Email] = &stored
	return user.ID, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeSigner struct {
	issued []int64
	err    error
}

func (f *fakeSigner) Issue(userID int64) (string, time.Time, error) {
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	f.issued = append(f.issued, userID)
	return fmt.Sprintf("token-%d", userID), time.Unix(3600, 0), nil
}

type fakeCategories struct {
	rows   map[int64]string
	inUse  map[int64]bool
	nextID int64
	calls  int
	err    error
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{rows: map[int64]string{}, inUse: map[int64]bool{}}
}

func (f *fakeCategories) Init(context.Context) error { return nil }

func (f *fakeCategories) nameTaken(name string, except int64) bool {
	for id, existing := range f.rows {
		if existing == name && id != except {
			return true
		}
	}
	return false
}

func (f *fakeCategories) Create(_ context.Context, category *domain.Category) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	if f.nameTaken(category.Name, 0) {
		return 0, repository.ErrConflict
	}
	f.nextID++
	category.ID = f.nextID
	f.rows[category.ID] = category.Name
	return category.ID, nil
}

func (f *fakeCategories) Update(_ context.Context, category *domain.Category) error {
	f.calls++
	if _, ok := f.rows[category.ID]; !ok {
		return repository.ErrNotFound
	}
	if f.nameTaken(category.Name, category.ID) {
		return repository.ErrConflict
	}
	f.rows[category.ID] = category.Name
	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id int64) error {
	f.calls++
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	if f.inUse[id] {
		return repository.ErrReferenced
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeCategories) Get(_ context.Context, id int64) (*domain.Category, error) {
	f.calls++
	name, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &domain.Category{ID: id, Name: name}, nil
}

func (f *fakeCategories) List(context.Context) ([]domain.Category, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Category{}
	for id := int64(1); id <= f.nextID; id++ {
		if name, ok := f.rows[id]; ok {
			out = append(out, domain.Category{ID: id, Name: name})
		}
	}
	return out, nil
}

type fakeProducts struct {
	rows       map[int64]domain.Product
	categories map[int64]bool
	nextID     int64
	calls      int
	lastPatch  *domain.ProductPatch
}

func newFakeProducts(categoryIDs ...int64) *fakeProducts {
	f := &fakeProducts{rows: map[int64]domain.Product{}, categories: map[int64]bool{}}
	for _, id := range categoryIDs {
		f.categories[id] = true
	}
	return f
}

func (f *fakeProducts) Init(context.Context) error { return nil }

func (f *fakeProducts) Create(_ context.Context, product *domain.Product) (int64, error) {
	f.calls++
	if !f.categories[product.CategoryID] {
		return 0, repository.ErrReferenceMissing
	}
	f.nextID++
	product.ID = f.nextID
	f.rows[product.ID] = *product
	return product.ID, nil
}

func (f *fakeProducts) Patch(_ context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	f.calls++
	f.lastPatch = &patch
	product, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.CategoryID != nil && !f.categories[*patch.CategoryID] {
		return nil, repository.ErrReferenceMissing
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		product.CategoryID = *patch.CategoryID
	}
	f.rows[id] = product
	return &product, nil
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	f.calls++
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeProducts) Get(_ context.Context, id int64) (*domain.Product, error) {
	f.calls++
	product, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &product, nil
}

func (f *fakeProducts) List(context.Context) ([]domain.Product, error) {
	f.calls++
	out := []domain.Product{}
	for id := int64(1); id <= f.nextID; id++ {
		if product, ok := f.rows[id]; ok {
			out = append(out, product)
		}
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }
