package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/commerce-api/internal/core/ports"
)

// AccountHandler mutates the authenticated user's account, one field per
// endpoint.
type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

type updateEmailRequest struct {
	Email string `json:"email" validate:"required,email,min=6"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type updateNameRequest struct {
	Name string `json:"name" validate:"required,min=6,max=150"`
}

type deleteAccountRequest struct {
	Email string `json:"email" validate:"required,email,min=6"`
}

// UpdateEmail changes the authenticated user's email address.
func (h *AccountHandler) UpdateEmail(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accountService.UpdateEmail(c.Request().Context(), userID, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdatePassword re-hashes and stores a new password for the authenticated user.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accountService.UpdatePassword(c.Request().Context(), userID, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateName changes the authenticated user's display name.
func (h *AccountHandler) UpdateName(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accountService.UpdateName(c.Request().Context(), userID, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes the account identified by the email in the request body and
// returns the deleted row.
func (h *AccountHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req deleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accountService.DeleteByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
