package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/commercekit/commerce-api/internal/api/metrics"
	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/core/ports"
)

// IdempotencyChecker abstracts the replay-protection store (Redis).
type IdempotencyChecker interface {
	IsDuplicate(ctx context.Context, userID int64, key string) (bool, error)
	Mark(ctx context.Context, userID int64, key string) error
}

// OrderService converts carts into orders and manages the result.
type OrderService struct {
	orderRepo   ports.OrderRepository
	productRepo ports.ProductRepository
	idem        IdempotencyChecker
	log         zerolog.Logger
}

func NewOrderService(orderRepo ports.OrderRepository, productRepo ports.ProductRepository, idem IdempotencyChecker, log zerolog.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, productRepo: productRepo, idem: idem, log: log}
}

// Place converts every current cart row into an order row and clears the
// cart, all inside one repository-owned transaction. An empty cart places
// zero orders and is not an error. When the caller supplies an idempotency
// key that was already seen, nothing is placed and the replay is reported.
func (s *OrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
	if input.IdempotencyKey != "" && s.idem != nil {
		isDup, err := s.idem.IsDuplicate(ctx, input.UserID, input.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Int64("user_id", input.UserID).Msg("idempotency check failed, placing anyway")
		} else if isDup {
			s.log.Info().Int64("user_id", input.UserID).Str("idempotency_key", input.IdempotencyKey).Msg("idempotent replay, no orders placed")
			return &ports.PlaceOrderResult{AlreadyPlaced: true}, nil
		}
	}

	orders, err := s.orderRepo.PlaceFromCart(ctx, input.UserID, input.Address, input.CreditCard)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if markErr := s.idem.Mark(ctx, input.UserID, input.IdempotencyKey); markErr != nil {
			s.log.Warn().Err(markErr).Int64("user_id", input.UserID).Msg("failed to mark idempotency key")
		}
	}

	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderItemsTotal.Add(float64(len(orders)))
	s.log.Info().Int64("user_id", input.UserID).Int("items", len(orders)).Msg("order placed")

	return &ports.PlaceOrderResult{Orders: orders}, nil
}

func (s *OrderService) GetOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// UpdateQuantity edits the quantity on the user's orders for the named
// product.
func (s *OrderService) UpdateQuantity(ctx context.Context, userID int64, productName string, quantity int) ([]domain.Order, error) {
	product, err := s.productRepo.FindByName(ctx, productName)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.UpdateQuantityByProduct(ctx, userID, product.ID, quantity)
}

func (s *OrderService) DeleteByProduct(ctx context.Context, userID int64, productName string) ([]domain.Order, error) {
	product, err := s.productRepo.FindByName(ctx, productName)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.DeleteByProduct(ctx, userID, product.ID)
}

func (s *OrderService) DeleteAll(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orderRepo.DeleteAll(ctx, userID)
}
