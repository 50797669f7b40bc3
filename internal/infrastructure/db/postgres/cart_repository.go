package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/pkg/dbx"
)

// CartRepository persists the user_products association rows. The table
// keys on (user_id, product_id), so Upsert can increment in place.
type CartRepository struct {
	db dbx.DBTX
}

func NewCartRepository(db dbx.DBTX) *CartRepository {
	return &CartRepository{db: db}
}

func scanCartItem(row *sql.Row) (*domain.CartItem, error) {
	var item domain.CartItem
	err := row.Scan(&item.UserID, &item.ProductID, &item.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("scan cart item: %w", err)
	}
	return &item, nil
}

// Upsert inserts the association row, or adds to the quantity when the
// (user, product) pair already exists.
func (r *CartRepository) Upsert(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `INSERT INTO user_products (user_id, product_id, quantity)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id, product_id)
	          DO UPDATE SET quantity = user_products.quantity + excluded.quantity
	          RETURNING user_id, product_id, quantity`

	upserted, err := scanCartItem(r.db.QueryRowContext(ctx, query, item.UserID, item.ProductID, item.Quantity))
	if err != nil {
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}
	return upserted, nil
}

const cartLineQuery = `SELECT up.user_id, up.product_id, up.quantity, p.name, p.description, p.price
	FROM user_products up
	JOIN products p ON p.id = up.product_id
	WHERE up.user_id = $1`

func (r *CartRepository) ListByUser(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, cartLineQuery+` ORDER BY up.product_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	var out []domain.CartLine
	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(&l.UserID, &l.ProductID, &l.Quantity, &l.ProductName, &l.Description, &l.Price); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *CartRepository) FindByUserAndProduct(ctx context.Context, userID, productID int64) (*domain.CartLine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.CartLine
	err := r.db.QueryRowContext(ctx, cartLineQuery+` AND up.product_id = $2`, userID, productID).
		Scan(&l.UserID, &l.ProductID, &l.Quantity, &l.ProductName, &l.Description, &l.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart line: %w", err)
	}
	return &l, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `UPDATE user_products SET quantity = $1
	          WHERE user_id = $2 AND product_id = $3
	          RETURNING user_id, product_id, quantity`
	return scanCartItem(r.db.QueryRowContext(ctx, query, quantity, userID, productID))
}

func (r *CartRepository) Delete(ctx context.Context, userID, productID int64) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `DELETE FROM user_products
	          WHERE user_id = $1 AND product_id = $2
	          RETURNING user_id, product_id, quantity`
	return scanCartItem(r.db.QueryRowContext(ctx, query, userID, productID))
}

// Clear removes every cart row for the user and reports how many went.
func (r *CartRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM user_products WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("clear cart: %w", err)
	}
	return res.RowsAffected()
}
