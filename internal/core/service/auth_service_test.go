package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
)

type stubLimiter struct {
	blocked  bool
	failures int
	resets   int
}

func (l *stubLimiter) TooManyAttempts(_ context.Context, _ string) (bool, error) {
	return l.blocked, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, role domain.Role, active bool) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	created, err := repo.Create(context.Background(), &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     active,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleAdmin, true)
	svc := NewAuthService(repo, nil, "secret", time.Hour, zerolog.Nop())

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Principal.Role != domain.RoleAdmin || result.Principal.Email != "carol@example.com" {
		t.Fatalf("unexpected principal: %+v", result.Principal)
	}
	if result.LandingPath != "/admin/dashboard" {
		t.Fatalf("expected admin landing, got %q", result.LandingPath)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleAdmin) {
		t.Fatalf("expected role claim %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["sub"] != result.Principal.UserID {
		t.Fatalf("expected sub claim %s, got %v", result.Principal.UserID, claims["sub"])
	}
}

func TestAuthService_Login_LandingPerRole(t *testing.T) {
	cases := map[domain.Role]string{
		domain.RoleEmployee:         "/employee/dashboard",
		domain.RoleRetailCustomer:   "/dashboard",
		domain.RoleResellerCustomer: "/reseller/catalog",
	}
	for role, want := range cases {
		repo := newStubUserRepo()
		seedUser(t, repo, "u@example.com", "s3cret", role, true)
		svc := NewAuthService(repo, nil, "secret", time.Hour, zerolog.Nop())

		result, err := svc.Login(context.Background(), "u@example.com", "s3cret")
		if err != nil {
			t.Fatalf("login(%s) failed: %v", role, err)
		}
		if result.LandingPath != want {
			t.Fatalf("landing(%s) = %q, want %q", role, result.LandingPath, want)
		}
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "dave@example.com", "goodpass", domain.RoleRetailCustomer, true)
	seedUser(t, repo, "inactive@example.com", "goodpass", domain.RoleRetailCustomer, false)
	svc := NewAuthService(repo, nil, "secret", time.Hour, zerolog.Nop())

	cases := []struct{ email, password string }{
		{"dave@example.com", "badpass"},      // wrong password
		{"ghost@example.com", "goodpass"},    // unknown email
		{"inactive@example.com", "goodpass"}, // deactivated account
	}
	for _, tc := range cases {
		_, err := svc.Login(context.Background(), tc.email, tc.password)
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("login(%s): expected ErrInvalidCredentials, got %v", tc.email, err)
		}
	}
}

func TestAuthService_Login_MissingInput(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), nil, "secret", time.Hour, zerolog.Nop())
	for _, tc := range []struct{ email, password string }{{"", "pass"}, {"a@b.c", ""}, {"", ""}} {
		if _, err := svc.Login(context.Background(), tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	}
}

func TestAuthService_Login_Throttle(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "eve@example.com", "goodpass", domain.RoleRetailCustomer, true)
	limiter := &stubLimiter{}
	svc := NewAuthService(repo, limiter, "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "eve@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", limiter.failures)
	}

	limiter.blocked = true
	if _, err := svc.Login(context.Background(), "eve@example.com", "goodpass"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}

	limiter.blocked = false
	if _, err := svc.Login(context.Background(), "eve@example.com", "goodpass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected throttle reset on success, got %d", limiter.resets)
	}
}
