package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winjhenshop/storefront-api/internal/api/middleware"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

// DashboardHandler serves the role-specific landing summary.
type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary handles GET /v1/dashboard.
//
// @Summary      Role-specific dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSummary
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	summary, err := h.dashboard.Summary(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}
