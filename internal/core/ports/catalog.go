package ports

import (
	"context"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
)

// ListProductsFilter carries the query parameters for catalog listing.
type ListProductsFilter struct {
	Category string // optional: exact category match
	Search   string // optional: case-insensitive substring on name
	Page     int    // 1-based
	Limit    int    // capped at 100 by the service
}

// ProductRepository defines persistence operations for catalog items.
type ProductRepository interface {
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

// ListProductsInput is the service-level catalog query. Role determines
// whether reseller pricing is included in the result.
type ListProductsInput struct {
	Role     domain.Role
	Category string
	Search   string
	Page     int
	Limit    int
}

// ProductListResult is returned by ListProducts.
type ProductListResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CatalogService defines catalog use-cases.
type CatalogService interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListResult, error)
	// GetProduct returns a single catalog item with the same role-based
	// pricing visibility as ListProducts.
	GetProduct(ctx context.Context, role domain.Role, id string) (*domain.Product, error)
}
