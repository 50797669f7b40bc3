package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/commerce-api/internal/core/ports"
)

// idempotencyKeyHeader carries the optional client-chosen placement key.
// Replaying a key the server has already seen places nothing.
const idempotencyKeyHeader = "Idempotency-Key"

// OrderHandler converts carts into orders and manages the result.
type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type placeOrderRequest struct {
	Address    string `json:"address"     validate:"required,min=6,max=500"`
	CreditCard string `json:"credit_card" validate:"required,min=6"`
}

type placeOrderResponse struct {
	Orders        []orderItem `json:"orders"`
	AlreadyPlaced bool        `json:"already_placed,omitempty"`
}

type updateOrderRequest struct {
	Name     string `json:"name"     validate:"required,min=4,max=150"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type deleteOrderRequest struct {
	Name string `json:"name" validate:"required,min=4,max=150"`
}

// Place converts every line of the caller's cart into order rows and empties
// the cart, all in one transaction. An empty cart places zero orders.
func (h *OrderHandler) Place(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.orderService.Place(c.Request().Context(), ports.PlaceOrderInput{
		UserID:         userID,
		Address:        req.Address,
		CreditCard:     req.CreditCard,
		IdempotencyKey: c.Request().Header.Get(idempotencyKeyHeader),
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.AlreadyPlaced {
		status = http.StatusOK
	}
	return c.JSON(status, placeOrderResponse{
		Orders:        maskOrders(result.Orders),
		AlreadyPlaced: result.AlreadyPlaced,
	})
}

// GetAll lists the caller's orders.
func (h *OrderHandler) GetAll(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.GetOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, maskOrders(orders))
}

// Update changes the quantity on the caller's orders for one product.
func (h *OrderHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	orders, err := h.orderService.UpdateQuantity(c.Request().Context(), userID, req.Name, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, maskOrders(orders))
}

// DeleteOne removes the caller's orders for the product named in the body and
// returns the removed rows.
func (h *OrderHandler) DeleteOne(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req deleteOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	orders, err := h.orderService.DeleteByProduct(c.Request().Context(), userID, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, maskOrders(orders))
}

// DeleteAll removes every order the caller has and returns the removed rows.
// Having no orders is not an error.
func (h *OrderHandler) DeleteAll(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.DeleteAll(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, maskOrders(orders))
}
