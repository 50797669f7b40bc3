package domain

import "time"

// Order is a persisted line produced from a cart item at placement time.
// Immutable after creation except for quantity edits through the explicit
// update operation.
type Order struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Address    string    `json:"address"`
	CreditCard string    `json:"credit_card"`
	CreatedAt  time.Time `json:"created_at"`
}
