package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/winjhenshop/storefront-api/internal/api/middleware"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

// CatalogHandler serves catalog listings.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type productListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

// List handles GET /v1/catalog/products.
//
// @Summary      List catalog products
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Filter by category"
// @Param        search    query     string  false  "Substring match on product name"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  productListResponse
// @Failure      401       {object}  map[string]string
// @Router       /v1/catalog/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	result, err := h.catalog.ListProducts(c.Request().Context(), ports.ListProductsInput{
		Role:     principal.Role,
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productListResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /v1/catalog/products/:id.
//
// @Summary      Get a catalog product
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/catalog/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), principal.Role, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed; the service layer normalizes the value.
func queryInt(c echo.Context, name string) int {
	n, _ := strconv.Atoi(c.QueryParam(name))
	return n
}
