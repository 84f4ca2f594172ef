package ports

import (
	"context"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
)

// ProfileInput carries the optional contact fields shared by both creation
// paths.
type ProfileInput struct {
	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
	Country string
}

// CreateAccountInput is the admin-initiated provisioning request.
type CreateAccountInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
	Profile   ProfileInput
}

// SignUpInput is the self-service registration request. Any role supplied by
// the caller is ignored; signup always produces a retail customer.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Profile   ProfileInput
}

// AccountService defines the two account-creation paths. Both return the
// created record sanitized (no password hash).
type AccountService interface {
	// CreateAccount provisions an account on behalf of an administrator.
	// Only EMPLOYEE and RESELLER_CUSTOMER roles are accepted; the record is
	// created active and pre-verified.
	CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.User, error)
	// SignUp registers a retail customer. The record is created active but
	// unverified.
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	// GetProfile returns the sanitized record for an authenticated user.
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}
