package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

const (
	// bcryptCost matches the storefront's fixed work factor.
	bcryptCost = 12
	// minPasswordLen is enforced here regardless of any client-side check.
	minPasswordLen = 6
)

// AccountService implements both account-creation paths.
type AccountService struct {
	users ports.UserRepository
	log   zerolog.Logger
	now   func() time.Time
}

func NewAccountService(users ports.UserRepository, log zerolog.Logger) *AccountService {
	return &AccountService{users: users, log: log, now: time.Now}
}

// CreateAccount provisions an account on behalf of an administrator. Only
// EMPLOYEE and RESELLER_CUSTOMER roles pass the whitelist; the record is
// created active and pre-verified.
func (s *AccountService) CreateAccount(ctx context.Context, input ports.CreateAccountInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" || input.Role == "" {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrValidation)
	}
	if !input.Role.AdminCreatable() {
		return nil, domain.ErrRoleNotAllowed
	}
	return s.create(ctx, input.Email, input.Password, input.FirstName, input.LastName, input.Role, input.Profile, true)
}

// SignUp registers a retail customer. The role is forced regardless of any
// value the caller supplied; the record starts active but unverified.
func (s *AccountService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrValidation)
	}
	return s.create(ctx, input.Email, input.Password, input.FirstName, input.LastName, domain.RoleRetailCustomer, input.Profile, false)
}

// GetProfile returns the account record behind an authenticated session,
// stripped of credential material.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *AccountService) create(ctx context.Context, email, password, firstName, lastName string, role domain.Role, profile ports.ProfileInput, verified bool) (*domain.User, error) {
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	// Check-then-act window here is closed by the unique email index; the
	// repository maps the index violation to ErrDuplicateEmail.
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		Email:         email,
		PasswordHash:  string(hash),
		FirstName:     firstName,
		LastName:      lastName,
		Role:          role,
		IsActive:      true,
		EmailVerified: verified,
		Phone:         profile.Phone,
		Address:       profile.Address,
		City:          profile.City,
		State:         profile.State,
		ZipCode:       profile.ZipCode,
		Country:       profile.Country,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		s.log.Error().Err(err).Str("email", email).Msg("failed to create account")
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(role)).Bool("pre_verified", verified).Msg("account created")
	return created.Sanitized(), nil
}
