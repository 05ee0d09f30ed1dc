package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopkart/commerce-api/internal/api"
	"github.com/shopkart/commerce-api/internal/api/handler"
	"github.com/shopkart/commerce-api/internal/api/middleware"
	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

type stubWishlistService struct {
	entries      []ports.WishlistEntry
	addErr       error
	removeErr    error
	gotAccountID string
	gotProductID string
}

func (s *stubWishlistService) List(_ context.Context, accountID string) ([]ports.WishlistEntry, error) {
	s.gotAccountID = accountID
	return s.entries, nil
}

func (s *stubWishlistService) Add(_ context.Context, accountID, productID string) error {
	s.gotAccountID, s.gotProductID = accountID, productID
	return s.addErr
}

func (s *stubWishlistService) Remove(_ context.Context, accountID, productID string) error {
	s.gotAccountID, s.gotProductID = accountID, productID
	return s.removeErr
}

// allowResolver authenticates every request as the same principal.
type allowResolver struct{}

func (allowResolver) Resolve(_ context.Context, token string) (*domain.Principal, error) {
	if token == "good-token" {
		return &domain.Principal{AccountID: "acc-1", Email: "jane@example.com"}, nil
	}
	return nil, domain.ErrUnauthenticated
}

func newWishlistEcho(svc ports.WishlistService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewWishlistHandler(svc)
	g := e.Group("/wishlist", middleware.Auth(allowResolver{}))
	g.GET("", h.List)
	g.POST("/:productId", h.Add)
	g.DELETE("/:productId", h.Remove)
	return e
}

func doWishlist(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWishlistHandler_RequiresAuth(t *testing.T) {
	e := newWishlistEcho(&stubWishlistService{})

	for _, token := range []string{"", "bad-token"} {
		rec := doWishlist(e, http.MethodGet, "/wishlist", token)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("token %q: status = %d, want 401", token, rec.Code)
		}
	}
}

func TestWishlistHandler_List(t *testing.T) {
	svc := &stubWishlistService{entries: []ports.WishlistEntry{{ProductID: "p1"}}}
	e := newWishlistEcho(svc)

	rec := doWishlist(e, http.MethodGet, "/wishlist", "good-token")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	if svc.gotAccountID != "acc-1" {
		t.Fatalf("account id = %q, want the principal's", svc.gotAccountID)
	}
}

func TestWishlistHandler_Add(t *testing.T) {
	svc := &stubWishlistService{}
	e := newWishlistEcho(svc)

	rec := doWishlist(e, http.MethodPost, "/wishlist/p1", "good-token")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body)
	}
	if svc.gotAccountID != "acc-1" || svc.gotProductID != "p1" {
		t.Fatalf("service saw account %q product %q", svc.gotAccountID, svc.gotProductID)
	}
}

func TestWishlistHandler_AddConflicts(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate", domain.ErrWishlistDuplicate, http.StatusConflict},
		{"unknown product", domain.ErrProductNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newWishlistEcho(&stubWishlistService{addErr: tc.err})

			rec := doWishlist(e, http.MethodPost, "/wishlist/p1", "good-token")
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d; body %s", rec.Code, tc.want, rec.Body)
			}
		})
	}
}

func TestWishlistHandler_Remove(t *testing.T) {
	e := newWishlistEcho(&stubWishlistService{})

	rec := doWishlist(e, http.MethodDelete, "/wishlist/p1", "good-token")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
}

func TestWishlistHandler_RemoveMissing(t *testing.T) {
	e := newWishlistEcho(&stubWishlistService{removeErr: domain.ErrWishlistNotFound})

	rec := doWishlist(e, http.MethodDelete, "/wishlist/p1", "good-token")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body %s", rec.Code, rec.Body)
	}
}
