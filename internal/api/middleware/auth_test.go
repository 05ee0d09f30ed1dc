package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

type stubResolver struct {
	principal *domain.Principal
	err       error
	gotToken  string
}

func (r *stubResolver) Resolve(_ context.Context, token string) (*domain.Principal, error) {
	r.gotToken = token
	if r.err != nil {
		return nil, r.err
	}
	return r.principal, nil
}

func invokeAuth(t *testing.T, resolver *stubResolver, header string) (*domain.Principal, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/wishlist", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured *domain.Principal
	next := func(c echo.Context) error {
		captured, _ = c.Get(PrincipalKey).(*domain.Principal)
		return nil
	}
	err := Auth(resolver)(next)(c)
	return captured, err
}

func TestAuth_ValidToken(t *testing.T) {
	resolver := &stubResolver{principal: &domain.Principal{AccountID: "acc-1", Email: "jane@example.com"}}

	principal, err := invokeAuth(t, resolver, "Bearer good-token")
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if resolver.gotToken != "good-token" {
		t.Fatalf("resolver saw token %q", resolver.gotToken)
	}
	if principal == nil || principal.AccountID != "acc-1" {
		t.Fatalf("principal not injected: %+v", principal)
	}
}

func TestAuth_SchemeIsCaseInsensitive(t *testing.T) {
	resolver := &stubResolver{principal: &domain.Principal{AccountID: "acc-1", Email: "jane@example.com"}}

	if _, err := invokeAuth(t, resolver, "bearer good-token"); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}

func TestAuth_BadHeader(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwdw=="},
		{"no credential", "Bearer "},
		{"bare token", "just-a-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &stubResolver{principal: &domain.Principal{AccountID: "acc-1"}}

			_, err := invokeAuth(t, resolver, tc.header)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Fatalf("code = %d, want 401", httpErr.Code)
			}
			if resolver.gotToken != "" {
				t.Fatalf("resolver must not run on a bad header")
			}
		})
	}
}

func TestAuth_UnauthenticatedResolution(t *testing.T) {
	resolver := &stubResolver{err: fmt.Errorf("%w: token expired", domain.ErrUnauthenticated)}

	_, err := invokeAuth(t, resolver, "Bearer stale-token")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", httpErr.Code)
	}
}

func TestAuth_StoreFaultIsNot401(t *testing.T) {
	resolver := &stubResolver{err: fmt.Errorf("connection reset")}

	_, err := invokeAuth(t, resolver, "Bearer good-token")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := err.(*echo.HTTPError); ok {
		t.Fatalf("store fault must propagate for the error handler, got %v", err)
	}
}
