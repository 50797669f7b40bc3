package domain

import "time"

// Product is a catalog entry. Products have no owner; catalog writes are
// restricted to the admin role at the routing layer.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}
