package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CatalogService serves the product catalog with role-dependent pricing.
type CatalogService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, log: log}
}

// ListProducts returns a catalog page. Reseller pricing and minimum order
// quantities are visible to resellers and back-office roles only; retail
// customers get the retail view.
func (s *CatalogService) ListProducts(ctx context.Context, input ports.ListProductsInput) (*ports.ProductListResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.products.List(ctx, ports.ListProductsFilter{
		Category: input.Category,
		Search:   input.Search,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list products")
		return nil, err
	}

	if !resellerPricingVisible(input.Role) {
		for i, p := range items {
			retail := *p
			retail.ResellerPrice = 0
			retail.MinOrderQty = 0
			items[i] = &retail
		}
	}

	return &ports.ProductListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// GetProduct returns one catalog item, applying the same pricing visibility
// rules as the listing.
func (s *CatalogService) GetProduct(ctx context.Context, role domain.Role, id string) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !resellerPricingVisible(role) {
		retail := *product
		retail.ResellerPrice = 0
		retail.MinOrderQty = 0
		return &retail, nil
	}
	return product, nil
}

func resellerPricingVisible(role domain.Role) bool {
	switch role {
	case domain.RoleResellerCustomer, domain.RoleAdmin, domain.RoleEmployee:
		return true
	default:
		return false
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
