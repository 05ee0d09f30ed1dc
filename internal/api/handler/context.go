package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkart/commerce-api/internal/api/middleware"
	"github.com/shopkart/commerce-api/internal/core/domain"
)

// ctxPrincipal extracts the principal the Auth middleware resolved for this
// request. Its presence proves the middleware ran; a protected route without
// it is a wiring mistake surfaced as 401, never a panic.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(*domain.Principal)
	if principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return principal, nil
}
