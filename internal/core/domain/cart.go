package domain

// CartItem is one (user, product, quantity) association row. The pair
// (UserID, ProductID) is unique: adding the same product again increments
// the quantity instead of creating a second row.
type CartItem struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartLine is a cart item joined with its product details, as returned by
// the cart read operations.
type CartLine struct {
	UserID      int64   `json:"user_id"`
	ProductID   int64   `json:"product_id"`
	Quantity    int     `json:"quantity"`
	ProductName string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
