package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated user ID injected by the Auth
// middleware. A missing or zero ID means the middleware did not run on this
// route, which is a wiring bug; reject with 401 rather than guessing.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get("user_id").(int64)
	if id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
