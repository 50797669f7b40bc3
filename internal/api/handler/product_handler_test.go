package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/commerce-api/internal/core/domain"
)

type stubProductService struct {
	createFn    func(ctx context.Context, name, description string, price float64) (*domain.Product, error)
	getByNameFn func(ctx context.Context, name string) (*domain.Product, error)
	listFn      func(ctx context.Context) ([]domain.Product, error)
	updateFn    func(ctx context.Context, name, newName, newDescription string, newPrice float64) (*domain.Product, error)
	deleteFn    func(ctx context.Context, name string) (*domain.Product, error)
}

func (s *stubProductService) Create(ctx context.Context, name, description string, price float64) (*domain.Product, error) {
	return s.createFn(ctx, name, description, price)
}

func (s *stubProductService) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	return s.getByNameFn(ctx, name)
}

func (s *stubProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Update(ctx context.Context, name, newName, newDescription string, newPrice float64) (*domain.Product, error) {
	return s.updateFn(ctx, name, newName, newDescription, newPrice)
}

func (s *stubProductService) DeleteByName(ctx context.Context, name string) (*domain.Product, error) {
	return s.deleteFn(ctx, name)
}

func TestProductHandler_GetAll(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: 1, Name: "widget", Price: 9.99},
				{ID: 2, Name: "gadget", Price: 19.99},
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/products/get-all", "")

	if err := handler.GetAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var products []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(products) != 2 || products[0]["name"] != "widget" {
		t.Fatalf("unexpected payload: %+v", products)
	}
}

func TestProductHandler_GetOne_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		getByNameFn: func(ctx context.Context, name string) (*domain.Product, error) {
			if name != "widget" {
				t.Fatalf("unexpected name: %s", name)
			}
			return &domain.Product{ID: 1, Name: name, Price: 9.99}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/products/get-one?name=widget", "")

	if err := handler.GetOne(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_GetOne_MissingName(t *testing.T) {
	e := newTestEcho()
	handler := NewProductHandler(&stubProductService{})

	c, _ := newJSONContext(e, http.MethodGet, "/api/products/get-one", "")

	err := handler.GetOne(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProductHandler_GetOne_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		getByNameFn: func(ctx context.Context, name string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newJSONContext(e, http.MethodGet, "/api/products/get-one?name=ghost", "")

	if err := handler.GetOne(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, name, description string, price float64) (*domain.Product, error) {
			return &domain.Product{ID: 3, Name: name, Description: description, Price: price}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/products/new",
		`{"name":"widget","description":"a fine widget","price":9.99}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_NegativePrice(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, name, description string, price float64) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/products/new",
		`{"name":"widget","description":"a fine widget","price":-1}`)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProductHandler_Update_PartialFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		updateFn: func(ctx context.Context, name, newName, newDescription string, newPrice float64) (*domain.Product, error) {
			if name != "widget" || newName != "" || newPrice != 12.5 {
				t.Fatalf("unexpected args: %s %s %f", name, newName, newPrice)
			}
			return &domain.Product{ID: 1, Name: name, Price: newPrice}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newJSONContext(e, http.MethodPut, "/api/products/change",
		`{"name":"widget","price":12.5}`)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, name string) (*domain.Product, error) {
			return &domain.Product{ID: 1, Name: name}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/products/delete?name=widget", "")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
