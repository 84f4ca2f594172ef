package ports

import (
	"context"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
)

// ListOrdersFilter carries the query parameters for order listing.
// CustomerID is enforced by the service layer: customers are always scoped to
// their own orders, back-office roles may query everything.
type ListOrdersFilter struct {
	CustomerID string // empty = no scoping (back-office)
	Status     string // optional: filter by order status
	Page       int    // 1-based
	Limit      int    // capped at 100 by the service
}

// OrderStats is an aggregate snapshot over orders matching a scope.
type OrderStats struct {
	Total           int64
	ByStatus        map[domain.OrderStatus]int64
	Revenue         float64
	PendingReseller int64
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
	// Stats aggregates counts and revenue. A non-empty customerID scopes the
	// aggregation to that customer's orders.
	Stats(ctx context.Context, customerID string) (*OrderStats, error)
}

// ListOrdersInput is the service-level order query.
type ListOrdersInput struct {
	Principal domain.Principal
	Status    string
	Page      int
	Limit     int
}

// OrderListResult is returned by ListOrders.
type OrderListResult struct {
	Items      []*domain.Order
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// OrderService defines order use-cases.
type OrderService interface {
	ListOrders(ctx context.Context, input ListOrdersInput) (*OrderListResult, error)
}

// DashboardSummary is the role-scoped landing-page snapshot. Admin-only
// fields are zero for other roles.
type DashboardSummary struct {
	Role            domain.Role                  `json:"role"`
	RoleDisplayName string                       `json:"role_display_name"`
	RoleBadgeColor  string                       `json:"role_badge_color"`
	LandingPath     string                       `json:"landing_path"`
	TotalOrders     int64                        `json:"total_orders"`
	OrdersByStatus  map[domain.OrderStatus]int64 `json:"orders_by_status"`
	TotalRevenue    float64                      `json:"total_revenue,omitempty"`
	TotalUsers      int64                        `json:"total_users,omitempty"`
	UsersByRole     map[domain.Role]int64        `json:"users_by_role,omitempty"`
	PendingReseller int64                        `json:"pending_reseller_orders,omitempty"`
}

// DashboardService computes the role-specific landing summary.
type DashboardService interface {
	Summary(ctx context.Context, principal domain.Principal) (*DashboardSummary, error)
}
