package ports

import (
	"context"
	"time"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
)

// UserRepository defines persistence operations for account records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// SetResetToken stores a reset token and its expiry on the user record.
	// Both fields are written in one update.
	SetResetToken(ctx context.Context, userID, token string, expiry time.Time) error
	// RedeemResetToken finds the record whose reset token equals token and
	// whose expiry is strictly after now, swaps in the new password hash, and
	// clears both token fields — all in a single atomic write. Returns
	// domain.ErrInvalidResetToken when no such record exists.
	RedeemResetToken(ctx context.Context, token, newHash string, now time.Time) (*domain.User, error)
	// CountByRole returns the number of accounts per role (back-office stats).
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
}
