package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkart/commerce-api/internal/core/ports"
)

// WishlistHandler serves the authenticated wishlist routes. All operations
// are scoped to the principal resolved by the auth middleware.
type WishlistHandler struct {
	service ports.WishlistService
}

func NewWishlistHandler(service ports.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// List handles GET /wishlist.
//
// @Summary      List the caller's wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.WishlistEntry
// @Failure      401  {object}  errorResponse
// @Router       /wishlist [get]
func (h *WishlistHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), principal.AccountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Add handles POST /wishlist/:productId.
//
// @Summary      Add a product to the wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string  true  "Product ID"
// @Success      201  {object}  ackResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /wishlist/{productId} [post]
func (h *WishlistHandler) Add(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Add(c.Request().Context(), principal.AccountID, c.Param("productId")); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ackResponse{Message: "added to wishlist"})
}

// Remove handles DELETE /wishlist/:productId.
//
// @Summary      Remove a product from the wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string  true  "Product ID"
// @Success      200  {object}  ackResponse
// @Failure      404  {object}  errorResponse
// @Router       /wishlist/{productId} [delete]
func (h *WishlistHandler) Remove(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), principal.AccountID, c.Param("productId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ackResponse{Message: "removed from wishlist"})
}
