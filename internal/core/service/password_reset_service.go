package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

const (
	resetTokenBytes = 32
	resetTokenTTL   = time.Hour
)

// PasswordResetService issues and redeems single-use reset tokens.
type PasswordResetService struct {
	users ports.UserRepository
	// devMode exposes the raw token in the response. Must never be enabled
	// in an environment reachable by untrusted callers.
	devMode bool
	log     zerolog.Logger
	now     func() time.Time
}

func NewPasswordResetService(users ports.UserRepository, devMode bool, log zerolog.Logger) *PasswordResetService {
	return &PasswordResetService{users: users, devMode: devMode, log: log, now: time.Now}
}

// RequestReset generates a reset token for the matching account and persists
// it with a one-hour expiry. Unknown emails return the same empty result
// without touching any state, so callers cannot probe for accounts.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) (*ports.ResetRequestResult, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Msg("reset requested for unknown email")
			return &ports.ResetRequestResult{}, nil
		}
		return nil, err
	}

	token, err := generateResetToken()
	if err != nil {
		return nil, fmt.Errorf("generate reset token: %w", err)
	}

	expiry := s.now().UTC().Add(resetTokenTTL)
	if err := s.users.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return nil, fmt.Errorf("store reset token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Time("expires_at", expiry).Msg("reset token issued")

	result := &ports.ResetRequestResult{}
	if s.devMode {
		result.Token = token
	}
	return result, nil
}

// ResetPassword redeems a token. The repository performs the lookup, hash
// swap, and token clear as one atomic write, so a token can never be redeemed
// twice and no observer can see a half-applied update.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return fmt.Errorf("%w: token and new password are required", domain.ErrValidation)
	}
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.RedeemResetToken(ctx, token, string(hash), s.now().UTC())
	if err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset completed")
	return nil
}

// generateResetToken returns 32 random bytes hex-encoded (64 characters).
func generateResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
