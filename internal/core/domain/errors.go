package domain

import "errors"

// Sentinel errors form the failure taxonomy exposed by the services.
// Persistence failures are mapped to the nearest entry at the repository
// boundary; anything unmapped surfaces as a generic 500 at the API layer.
var (
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
)
