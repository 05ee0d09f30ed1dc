package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkart/commerce-api/internal/core/ports"
)

// AddressHandler serves the authenticated address-book routes.
type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

// List handles GET /addresses.
//
// @Summary      List the caller's addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Address
// @Failure      401  {object}  errorResponse
// @Router       /addresses [get]
func (h *AddressHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	addresses, err := h.service.List(c.Request().Context(), principal.AccountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addresses)
}

// Create handles POST /addresses.
//
// @Summary      Add an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addressRequest  true  "Address details"
// @Success      201   {object}  domain.Address
// @Failure      400   {object}  errorResponse
// @Router       /addresses [post]
func (h *AddressHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	addr, err := h.service.Create(c.Request().Context(), principal.AccountID, toAddressInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, addr)
}

// Update handles PUT /addresses/:id.
//
// @Summary      Update an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Address ID"
// @Param        body  body      addressRequest  true  "Address details"
// @Success      200   {object}  domain.Address
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /addresses/{id} [put]
func (h *AddressHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	addr, err := h.service.Update(c.Request().Context(), principal.AccountID, c.Param("id"), toAddressInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addr)
}

// Delete handles DELETE /addresses/:id.
//
// @Summary      Delete an address
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Address ID"
// @Success      200  {object}  ackResponse
// @Failure      404  {object}  errorResponse
// @Router       /addresses/{id} [delete]
func (h *AddressHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal.AccountID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ackResponse{Message: "address deleted"})
}

func toAddressInput(req addressRequest) ports.AddressInput {
	return ports.AddressInput{
		Type:        req.Type,
		Name:        req.Name,
		Phone:       req.Phone,
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		IsDefault:   req.IsDefault,
	}
}
