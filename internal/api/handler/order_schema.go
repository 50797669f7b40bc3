package handler

import (
	"strings"
	"time"

	"github.com/commercekit/commerce-api/internal/core/domain"
)

// orderItem is the transport shape of an order. It is intentionally separate
// from domain.Order so the stored card number never reaches a response body
// unmasked.
type orderItem struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Address    string    `json:"address"`
	CreditCard string    `json:"credit_card"`
	CreatedAt  time.Time `json:"created_at"`
}

func maskOrders(orders []domain.Order) []orderItem {
	items := make([]orderItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, orderItem{
			ID:         o.ID,
			UserID:     o.UserID,
			ProductID:  o.ProductID,
			Quantity:   o.Quantity,
			Address:    o.Address,
			CreditCard: maskCard(o.CreditCard),
			CreatedAt:  o.CreatedAt,
		})
	}
	return items
}

// maskCard keeps the last four digits and replaces the rest with asterisks.
func maskCard(card string) string {
	if len(card) <= 4 {
		return card
	}
	return strings.Repeat("*", len(card)-4) + card[len(card)-4:]
}
