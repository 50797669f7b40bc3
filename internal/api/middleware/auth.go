package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/pkg/token"
)

// Auth reads the identity token from the custom "token" request header,
// verifies it, and injects the user id and role into the request context.
// A missing header fails with 401 before any service runs; a present but
// unverifiable token fails with 400.
func Auth(verifier *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("token")
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied")
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				return domain.ErrInvalidToken
			}
			userID, err := claims.UserID()
			if err != nil {
				return domain.ErrInvalidToken
			}

			c.Set("user_id", userID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
