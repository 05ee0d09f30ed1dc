package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopkart/commerce-api/internal/core/ports"
)

// ProductHandler serves the public catalog read paths.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Filter by category"
// @Param        brand     query  string  false  "Filter by brand"
// @Param        in_stock  query  bool    false  "Filter by stock availability"
// @Param        page      query  int     false  "Page number (0-based)"
// @Param        size      query  int     false  "Page size"
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := ports.ProductFilter{
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
		Page:     intParam(c, "page", 0),
		PageSize: intParam(c, "size", 0),
	}
	if raw := c.QueryParam("in_stock"); raw != "" {
		if inStock, err := strconv.ParseBool(raw); err == nil {
			filter.InStock = &inStock
		}
	}

	products, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// ByCategory handles GET /products/category/:category.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        category  path  string  true  "Category name"
// @Success      200  {array}  domain.Product
// @Router       /products/category/{category} [get]
func (h *ProductHandler) ByCategory(c echo.Context) error {
	products, err := h.service.List(c.Request().Context(), ports.ProductFilter{
		Category: c.Param("category"),
		Page:     intParam(c, "page", 0),
		PageSize: intParam(c, "size", 0),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ByBrand handles GET /products/brand/:brand.
//
// @Summary      List products of a brand
// @Tags         products
// @Produce      json
// @Param        brand  path  string  true  "Brand name"
// @Success      200  {array}  domain.Product
// @Router       /products/brand/{brand} [get]
func (h *ProductHandler) ByBrand(c echo.Context) error {
	products, err := h.service.List(c.Request().Context(), ports.ProductFilter{
		Brand:    c.Param("brand"),
		Page:     intParam(c, "page", 0),
		PageSize: intParam(c, "size", 0),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Search handles GET /products/search?q=.
//
// @Summary      Search products
// @Tags         products
// @Produce      json
// @Param        q  query  string  true  "Search query"
// @Success      200  {array}  domain.Product
// @Router       /products/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.service.Search(c.Request().Context(),
		c.QueryParam("q"), intParam(c, "page", 0), intParam(c, "size", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
