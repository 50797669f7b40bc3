package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/pkg/dbx"
)

const productColumns = "id, name, description, price, created_at"

type ProductRepository struct {
	db dbx.DBTX
}

func NewProductRepository(db dbx.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row *sql.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `INSERT INTO products (name, description, price)
	          VALUES ($1, $2, $3)
	          RETURNING ` + productColumns

	created, err := scanProduct(r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Price))
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return created, nil
}

func (r *ProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1`
	return scanProduct(r.db.QueryRowContext(ctx, query, name))
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, id int64, name, description string, price float64) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `UPDATE products SET name = $1, description = $2, price = $3
	          WHERE id = $4 RETURNING ` + productColumns
	return scanProduct(r.db.QueryRowContext(ctx, query, name, description, price, id))
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns
	return scanProduct(r.db.QueryRowContext(ctx, query, id))
}
