package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
)

// products must be created after categories for the foreign key to resolve.
const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	price REAL NOT NULL CHECK (price > 0),
	category_id INTEGER NOT NULL,
	FOREIGN KEY(category_id) REFERENCES categories(id) ON DELETE RESTRICT
);
CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);
`

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProductsTable); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	return nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO products (name, price, category_id)
VALUES (?, ?, ?)`,
		product.Name,
		product.Price,
		product.CategoryID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("insert product: category %d: %w", product.CategoryID, repository.ErrReferenceMissing)
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("product last insert id: %w", err)
	}
	product.ID = id
	return id, nil
}

func (r *ProductRepository) Patch(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `
UPDATE products
SET name = COALESCE(?, name), price = COALESCE(?, price), category_id = COALESCE(?, category_id)
WHERE id = ?
RETURNING id, name, price, category_id`,
		nullable(patch.Name),
		nullable(patch.Price),
		nullable(patch.CategoryID),
		id,
	)

	product, err := scanProduct(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("update product %d: %w", id, repository.ErrReferenceMissing)
		}
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("product delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, price, category_id
FROM products
WHERE id=?`,
		id,
	)
	return scanProduct(row)
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, price, category_id
FROM products
ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}

	return products, rows.Err()
}

func scanProduct(scanner interface {
	Scan(dest ...any) error
}) (*domain.Product, error) {
	var product domain.Product
	if err := scanner.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.CategoryID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &product, nil
}

func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
