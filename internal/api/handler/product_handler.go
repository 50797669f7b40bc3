package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/commerce-api/internal/core/ports"
)

// ProductHandler exposes the catalog. Reads are open to any authenticated
// user; writes sit behind the admin role at the routing layer.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=4,max=150"`
	Description string  `json:"description" validate:"required,min=6,max=500"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

type updateProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=4,max=150"`
	NewName     string  `json:"new_name"    validate:"omitempty,min=4,max=150"`
	Description string  `json:"description" validate:"omitempty,min=6,max=500"`
	Price       float64 `json:"price"       validate:"omitempty,gt=0"`
}

// productName pulls the required ?name= query parameter.
func productName(c echo.Context) (string, error) {
	name := c.QueryParam("name")
	if name == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "name query parameter is required")
	}
	return name, nil
}

// GetAll lists the whole catalog.
func (h *ProductHandler) GetAll(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetOne returns a single product addressed by ?name=.
func (h *ProductHandler) GetOne(c echo.Context) error {
	name, err := productName(c)
	if err != nil {
		return err
	}

	product, err := h.productService.GetByName(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a catalog entry. Admin only.
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Create(c.Request().Context(), req.Name, req.Description, req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update edits the product addressed by body name. Omitted fields keep their
// current value. Admin only.
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Update(c.Request().Context(), req.Name, req.NewName, req.Description, req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes the product addressed by ?name= and returns the deleted row.
// Admin only.
func (h *ProductHandler) Delete(c echo.Context) error {
	name, err := productName(c)
	if err != nil {
		return err
	}

	product, err := h.productService.DeleteByName(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
