package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/commercekit/commerce-api/internal/api/metrics"
	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/core/ports"
)

// CartService manages a user's cart lines. Items are addressed by product
// name; an unknown name yields domain.ErrProductNotFound before any cart
// row is touched.
type CartService struct {
	cartRepo    ports.CartRepository
	productRepo ports.ProductRepository
	log         zerolog.Logger
}

func NewCartService(cartRepo ports.CartRepository, productRepo ports.ProductRepository, log zerolog.Logger) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo, log: log}
}

// AddItem resolves the product and upserts the association row. Adding a
// product already in the cart increments its quantity.
func (s *CartService) AddItem(ctx context.Context, userID int64, productName string, quantity int) (*domain.CartItem, error) {
	product, err := s.productRepo.FindByName(ctx, productName)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.Upsert(ctx, &domain.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, err
	}

	metrics.CartItemsAddedTotal.Inc()
	s.log.Debug().Int64("user_id", userID).Int64("product_id", product.ID).Int("quantity", item.Quantity).Msg("cart item upserted")
	return item, nil
}

func (s *CartService) ListItems(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}

func (s *CartService) GetItem(ctx context.Context, userID int64, productName string) (*domain.CartLine, error) {
	product, err := s.productRepo.FindByName(ctx, productName)
	if err != nil {
		return nil, err
	}
	return s.cartRepo.FindByUserAndProduct(ctx, userID, product.ID)
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID int64, productName string, quantity int) (*domain.CartItem, error) {
	product, err := s.productRepo.FindByName(ctx, productName)
	if err != nil {
		return nil, err
	}
	return s.cartRepo.UpdateQuantity(ctx, userID, product.ID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, userID int64, productName string) (*domain.CartItem, error) {
	product, err := s.productRepo.FindByName(ctx, productName)
	if err != nil {
		return nil, err
	}
	return s.cartRepo.Delete(ctx, userID, product.ID)
}

func (s *CartService) ClearCart(ctx context.Context, userID int64) (int64, error) {
	return s.cartRepo.Clear(ctx, userID)
}
