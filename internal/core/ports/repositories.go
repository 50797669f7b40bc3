package ports

import (
	"context"

	"github.com/commercekit/commerce-api/internal/core/domain"
)

// UserRepository persists accounts. Create maps the unique-email conflict
// signal to domain.ErrDuplicateEmail; lookups return domain.ErrUserNotFound
// when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateEmail(ctx context.Context, id int64, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (*domain.User, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
}

// ProductRepository persists catalog entries.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id int64, name, description string, price float64) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (*domain.Product, error)
}

// CartRepository persists (user, product, quantity) association rows.
// Upsert increments the quantity when the pair already exists.
type CartRepository interface {
	Upsert(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.CartLine, error)
	FindByUserAndProduct(ctx context.Context, userID, productID int64) (*domain.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, userID, productID int64) (*domain.CartItem, error)
	Clear(ctx context.Context, userID int64) (int64, error)
}

// OrderRepository persists orders. PlaceFromCart converts every cart row of
// the user into an order row and clears the cart inside a single
// transaction; a failure anywhere leaves both tables untouched.
type OrderRepository interface {
	PlaceFromCart(ctx context.Context, userID int64, address, creditCard string) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	UpdateQuantityByProduct(ctx context.Context, userID, productID int64, quantity int) ([]domain.Order, error)
	DeleteByProduct(ctx context.Context, userID, productID int64) ([]domain.Order, error)
	DeleteAll(ctx context.Context, userID int64) ([]domain.Order, error)
}
