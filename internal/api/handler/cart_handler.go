package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/commerce-api/internal/core/ports"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	cartService ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type addCartItemRequest struct {
	Name     string `json:"name"     validate:"required,min=4,max=150"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Name     string `json:"name"     validate:"required,min=4,max=150"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type clearCartResponse struct {
	Removed int64 `json:"removed"`
}

// Add puts a product in the cart. Adding a product already in the cart
// increments its quantity instead of creating a second line.
func (h *CartHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.cartService.AddItem(c.Request().Context(), userID, req.Name, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// GetAll lists the cart joined with product details.
func (h *CartHandler) GetAll(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	lines, err := h.cartService.ListItems(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// GetOne returns the cart line for the product addressed by ?name=.
func (h *CartHandler) GetOne(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	name, err := productName(c)
	if err != nil {
		return err
	}

	line, err := h.cartService.GetItem(c.Request().Context(), userID, name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, line)
}

// Update sets the quantity of an existing cart line.
func (h *CartHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.cartService.UpdateQuantity(c.Request().Context(), userID, req.Name, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteOne removes the cart line addressed by ?name= and returns the removed
// row.
func (h *CartHandler) DeleteOne(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	name, err := productName(c)
	if err != nil {
		return err
	}

	item, err := h.cartService.RemoveItem(c.Request().Context(), userID, name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteAll empties the cart and reports how many lines were removed.
// An already-empty cart is not an error.
func (h *CartHandler) DeleteAll(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	removed, err := h.cartService.ClearCart(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clearCartResponse{Removed: removed})
}
