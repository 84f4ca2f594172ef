package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

// DashboardService assembles the role-specific landing snapshot.
type DashboardService struct {
	users  ports.UserRepository
	orders ports.OrderRepository
	log    zerolog.Logger
}

func NewDashboardService(users ports.UserRepository, orders ports.OrderRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{users: users, orders: orders, log: log}
}

// Summary computes the dashboard for the calling principal. Customers see
// their own order stats; back-office roles see platform-wide numbers, and
// admins additionally get account counts per role.
func (s *DashboardService) Summary(ctx context.Context, principal domain.Principal) (*ports.DashboardSummary, error) {
	scope := principal.UserID
	if backOffice(principal.Role) {
		scope = ""
	}

	stats, err := s.orders.Stats(ctx, scope)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", principal.UserID).Msg("failed to aggregate order stats")
		return nil, err
	}

	summary := &ports.DashboardSummary{
		Role:            principal.Role,
		RoleDisplayName: principal.Role.DisplayName(),
		RoleBadgeColor:  principal.Role.BadgeColor(),
		LandingPath:     principal.Role.LandingPath(),
		TotalOrders:     stats.Total,
		OrdersByStatus:  stats.ByStatus,
	}

	if backOffice(principal.Role) {
		summary.TotalRevenue = stats.Revenue
		summary.PendingReseller = stats.PendingReseller
	}

	if principal.Role == domain.RoleAdmin {
		byRole, err := s.users.CountByRole(ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to count users by role")
			return nil, err
		}
		summary.UsersByRole = byRole
		for _, n := range byRole {
			summary.TotalUsers += n
		}
	}

	return summary, nil
}
