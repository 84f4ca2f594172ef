package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

// OrderService serves role-scoped order listings.
type OrderService struct {
	orders ports.OrderRepository
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, log: log}
}

// ListOrders returns a page of orders. Back-office roles see every order;
// customers are always scoped to their own.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) (*ports.OrderListResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	customerID := input.Principal.UserID
	if backOffice(input.Principal.Role) {
		customerID = ""
	}

	items, total, err := s.orders.List(ctx, ports.ListOrdersFilter{
		CustomerID: customerID,
		Status:     input.Status,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list orders")
		return nil, err
	}

	return &ports.OrderListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func backOffice(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleEmployee
}
