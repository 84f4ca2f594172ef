package ports

import (
	"context"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
)

// LoginResult carries everything the transport layer needs after a successful
// authentication: the signed session token, the principal embedded in it, and
// the role-dependent landing route for the client redirect.
type LoginResult struct {
	Token       string
	Principal   domain.Principal
	LandingPath string
}

// AuthService verifies credentials and issues session principals.
type AuthService interface {
	// Login authenticates email+password. Unknown email and wrong password
	// both fail with domain.ErrInvalidCredentials. A tripped attempt
	// throttle fails with domain.ErrTooManyAttempts.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
