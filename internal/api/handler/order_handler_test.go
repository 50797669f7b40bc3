package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/core/ports"
)

type stubOrderService struct {
	placeFn          func(ctx context.Context, input ports.PlaceOrderInput) (*ports.PlaceOrderResult, error)
	getOrdersFn      func(ctx context.Context, userID int64) ([]domain.Order, error)
	updateQuantityFn func(ctx context.Context, userID int64, productName string, quantity int) ([]domain.Order, error)
	deleteByProdFn   func(ctx context.Context, userID int64, productName string) ([]domain.Order, error)
	deleteAllFn      func(ctx context.Context, userID int64) ([]domain.Order, error)
}

func (s *stubOrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
	return s.placeFn(ctx, input)
}

func (s *stubOrderService) GetOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.getOrdersFn(ctx, userID)
}

func (s *stubOrderService) UpdateQuantity(ctx context.Context, userID int64, productName string, quantity int) ([]domain.Order, error) {
	return s.updateQuantityFn(ctx, userID, productName, quantity)
}

func (s *stubOrderService) DeleteByProduct(ctx context.Context, userID int64, productName string) ([]domain.Order, error) {
	return s.deleteByProdFn(ctx, userID, productName)
}

func (s *stubOrderService) DeleteAll(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.deleteAllFn(ctx, userID)
}

func TestOrderHandler_Place_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		placeFn: func(ctx context.Context, input ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
			if input.UserID != 42 || input.Address != "1 Main Street" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.PlaceOrderResult{
				Orders: []domain.Order{
					{ID: 1, UserID: 42, ProductID: 1, Quantity: 2, Address: input.Address, CreditCard: "4111111111111111"},
				},
			}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/orders/new",
		`{"address":"1 Main Street","credit_card":"4111111111111111"}`)
	c.Set("user_id", int64(42))

	if err := handler.Place(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp placeOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(resp.Orders))
	}
	if resp.Orders[0].CreditCard != "************1111" {
		t.Fatalf("card not masked: %q", resp.Orders[0].CreditCard)
	}
}

func TestOrderHandler_Place_ForwardsIdempotencyKey(t *testing.T) {
	e := newTestEcho()
	var gotKey string
	stub := &stubOrderService{
		placeFn: func(ctx context.Context, input ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
			gotKey = input.IdempotencyKey
			return &ports.PlaceOrderResult{}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/orders/new",
		`{"address":"1 Main Street","credit_card":"4111111111111111"}`)
	c.Request().Header.Set(idempotencyKeyHeader, "key-123")
	c.Set("user_id", int64(42))

	if err := handler.Place(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotKey != "key-123" {
		t.Fatalf("expected key-123, got %q", gotKey)
	}
}

func TestOrderHandler_Place_AlreadyPlaced(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		placeFn: func(ctx context.Context, input ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
			return &ports.PlaceOrderResult{AlreadyPlaced: true}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/orders/new",
		`{"address":"1 Main Street","credit_card":"4111111111111111"}`)
	c.Set("user_id", int64(42))

	if err := handler.Place(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for replayed key, got %d", rec.Code)
	}

	var resp placeOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.AlreadyPlaced {
		t.Fatalf("expected already_placed=true")
	}
}

func TestOrderHandler_GetAll_MasksCards(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		getOrdersFn: func(ctx context.Context, userID int64) ([]domain.Order, error) {
			return []domain.Order{
				{ID: 1, UserID: userID, ProductID: 1, Quantity: 1, CreditCard: "5500005555555559"},
			}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/orders/get-all", "")
	c.Set("user_id", int64(42))

	if err := handler.GetAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var orders []orderItem
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(orders) != 1 || orders[0].CreditCard != "************5559" {
		t.Fatalf("unexpected payload: %+v", orders)
	}
}

func TestOrderHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		updateQuantityFn: func(ctx context.Context, userID int64, productName string, quantity int) ([]domain.Order, error) {
			return nil, domain.ErrOrderNotFound
		},
	}
	handler := NewOrderHandler(stub)

	c, _ := newJSONContext(e, http.MethodPut, "/api/orders/change",
		`{"name":"widget","quantity":2}`)
	c.Set("user_id", int64(42))

	if err := handler.Update(c); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderHandler_DeleteOne_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		deleteByProdFn: func(ctx context.Context, userID int64, productName string) ([]domain.Order, error) {
			if productName != "widget" {
				t.Fatalf("unexpected name: %s", productName)
			}
			return []domain.Order{{ID: 1, UserID: userID, ProductID: 1}}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/orders/delete-one",
		`{"name":"widget"}`)
	c.Set("user_id", int64(42))

	if err := handler.DeleteOne(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_DeleteAll_EmptyIsOK(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		deleteAllFn: func(ctx context.Context, userID int64) ([]domain.Order, error) {
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/orders/delete-all", "")
	c.Set("user_id", int64(42))

	if err := handler.DeleteAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMaskCard(t *testing.T) {
	cases := []struct{ in, want string }{
		{"4111111111111111", "************1111"},
		{"1234", "1234"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := maskCard(tc.in); got != tc.want {
			t.Errorf("maskCard(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
