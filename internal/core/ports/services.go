package ports

import (
	"context"

	"github.com/commercekit/commerce-api/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// AccountService mutates an existing account one field per call.
type AccountService interface {
	UpdateEmail(ctx context.Context, userID int64, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID int64, password string) (*domain.User, error)
	UpdateName(ctx context.Context, userID int64, name string) (*domain.User, error)
	DeleteByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProductService manages the catalog. Products are addressed by name, the
// way the public API exposes them.
type ProductService interface {
	Create(ctx context.Context, name, description string, price float64) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, name, newName, newDescription string, newPrice float64) (*domain.Product, error)
	DeleteByName(ctx context.Context, name string) (*domain.Product, error)
}

// CartService manages a user's cart lines.
type CartService interface {
	AddItem(ctx context.Context, userID int64, productName string, quantity int) (*domain.CartItem, error)
	ListItems(ctx context.Context, userID int64) ([]domain.CartLine, error)
	GetItem(ctx context.Context, userID int64, productName string) (*domain.CartLine, error)
	UpdateQuantity(ctx context.Context, userID int64, productName string, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID int64, productName string) (*domain.CartItem, error)
	ClearCart(ctx context.Context, userID int64) (int64, error)
}

// PlaceOrderInput carries everything needed to convert a cart into orders.
// IdempotencyKey is optional; when present, a replayed key places nothing.
type PlaceOrderInput struct {
	UserID         int64
	Address        string
	CreditCard     string
	IdempotencyKey string
}

// PlaceOrderResult reports what the placement did.
type PlaceOrderResult struct {
	Orders []domain.Order
	// AlreadyPlaced is true when the idempotency key matched a previous
	// placement and no new rows were created.
	AlreadyPlaced bool
}

// OrderService converts carts into orders and manages the result.
type OrderService interface {
	Place(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error)
	GetOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	UpdateQuantity(ctx context.Context, userID int64, productName string, quantity int) ([]domain.Order, error)
	DeleteByProduct(ctx context.Context, userID int64, productName string) ([]domain.Order, error)
	DeleteAll(ctx context.Context, userID int64) ([]domain.Order, error)
}
