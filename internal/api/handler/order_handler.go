package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winjhenshop/storefront-api/internal/api/middleware"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

// OrderHandler serves role-scoped order listings.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

// List handles GET /v1/orders. Customers see their own orders; back-office
// roles see everything.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by order status"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  orderListResponse
// @Failure      401     {object}  map[string]string
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	result, err := h.orders.ListOrders(c.Request().Context(), ports.ListOrdersInput{
		Principal: principal,
		Status:    c.QueryParam("status"),
		Page:      queryInt(c, "page"),
		Limit:     queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderListResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}
