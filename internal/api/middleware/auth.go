package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopkart/commerce-api/internal/api/metrics"
	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which Auth stores the resolved
// *domain.Principal for the duration of one request.
const PrincipalKey = "principal"

// Auth resolves the bearer token into a verified principal and injects it
// into the request context. Resolution happens once per request; handlers
// read the result, they never re-verify.
func Auth(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := BearerToken(c)
			if err != nil {
				metrics.TokenResolutionsTotal.WithLabelValues("unauthenticated").Inc()
				return err
			}

			principal, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					metrics.TokenResolutionsTotal.WithLabelValues("unauthenticated").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
				}
				// Storage unavailable is a server fault, not an auth failure.
				return err
			}

			metrics.TokenResolutionsTotal.WithLabelValues("ok").Inc()
			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// BearerToken extracts the credential from the Authorization header. A
// missing or malformed header is a 401, never a server fault.
func BearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
