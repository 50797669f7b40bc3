package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/commercekit/commerce-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors: a
// machine-readable taxonomy code plus a human-readable message.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Taxonomy codes carried in the error envelope.
const (
	CodeValidationFailed   = "validation_failed"
	CodeUnauthorized       = "unauthorized"
	CodeInvalidToken       = "invalid_token"
	CodeForbidden          = "forbidden"
	CodeDuplicateEmail     = "duplicate_email"
	CodeInvalidCredentials = "invalid_credentials"
	CodeNotFound           = "not_found"
	CodePersistenceError   = "persistence_error"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic status codes and taxonomy codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"code": "...", "message": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, resp := resolveError(err, log, c)
		_ = c.JSON(status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Known domain errors first.
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, errorResponse{CodeDuplicateEmail, "email already in use"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{CodeInvalidCredentials, "invalid credentials"}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusBadRequest, errorResponse{CodeInvalidToken, "invalid token"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{CodeNotFound, "user not found"}
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, errorResponse{CodeNotFound, "product not found"}
	case errors.Is(err, domain.ErrCartItemNotFound):
		return http.StatusNotFound, errorResponse{CodeNotFound, "cart item not found"}
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, errorResponse{CodeNotFound, "order not found"}
	}

	// Echo's own errors (bind failures, 404 from router, middleware halts).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{codeForStatus(he.Code), fmt.Sprintf("%v", he.Message)}
	}

	// Unexpected error: log the real cause, return a generic message. The
	// services only touch the persistence layer, so anything unmapped is
	// reported as a persistence failure.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{CodePersistenceError, "internal server error"}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidationFailed
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	default:
		return CodePersistenceError
	}
}
