package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

// OrderHandler serves the authenticated order history routes.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /orders.
//
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Filter by order status"
// @Param        page    query  int     false  "Page number (0-based)"
// @Param        size    query  int     false  "Page size"
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	orders, err := h.service.List(c.Request().Context(), principal.AccountID, ports.OrderFilter{
		Status:   domain.OrderStatus(c.QueryParam("status")),
		Page:     intParam(c, "page", 0),
		PageSize: intParam(c, "size", 0),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /orders/:id.
//
// @Summary      Get one of the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Order ID"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), principal.AccountID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
