package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/pkg/dbx"
)

const orderColumns = "id, user_id, product_id, quantity, address, credit_card, created_at"

// OrderRepository persists orders. It holds the *sql.DB rather than a DBTX
// because PlaceFromCart opens its own transaction.
type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func collectOrders(rows *sql.Rows, err error, op string) ([]domain.Order, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.Address, &o.CreditCard, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan order: %w", op, err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// PlaceFromCart copies every cart row of the user into the orders table and
// clears the cart, as one transaction. Either both steps land or neither
// does; an empty cart commits zero order rows and is not an error.
func (r *OrderRepository) PlaceFromCart(ctx context.Context, userID int64, address, creditCard string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var placed []domain.Order
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		insert := `INSERT INTO orders (user_id, product_id, quantity, address, credit_card)
		           SELECT user_id, product_id, quantity, $2, $3
		           FROM user_products WHERE user_id = $1
		           RETURNING ` + orderColumns

		rows, err := tx.QueryContext(ctx, insert, userID, address, creditCard)
		placed, err = collectOrders(rows, err, "place order")
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM user_products WHERE user_id = $1`, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	return collectOrders(rows, err, "list orders")
}

func (r *OrderRepository) UpdateQuantityByProduct(ctx context.Context, userID, productID int64, quantity int) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `UPDATE orders SET quantity = $1
	          WHERE user_id = $2 AND product_id = $3
	          RETURNING ` + orderColumns

	rows, err := r.db.QueryContext(ctx, query, quantity, userID, productID)
	updated, err := collectOrders(rows, err, "update order quantity")
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return updated, nil
}

func (r *OrderRepository) DeleteByProduct(ctx context.Context, userID, productID int64) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `DELETE FROM orders
	          WHERE user_id = $1 AND product_id = $2
	          RETURNING ` + orderColumns

	rows, err := r.db.QueryContext(ctx, query, userID, productID)
	deleted, err := collectOrders(rows, err, "delete order")
	if err != nil {
		return nil, err
	}
	if len(deleted) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return deleted, nil
}

// DeleteAll removes every order of the user. Deleting nothing is fine.
func (r *OrderRepository) DeleteAll(ctx context.Context, userID int64) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `DELETE FROM orders WHERE user_id = $1 RETURNING ` + orderColumns
	rows, err := r.db.QueryContext(ctx, query, userID)
	return collectOrders(rows, err, "delete orders")
}
