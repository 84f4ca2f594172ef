package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/winjhenshop/storefront-api/internal/api/middleware"
	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

type stubAccountService struct {
	createFn  func(ctx context.Context, input ports.CreateAccountInput) (*domain.User, error)
	signUpFn  func(ctx context.Context, input ports.SignUpInput) (*domain.User, error)
	profileFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAccountService) CreateAccount(ctx context.Context, input ports.CreateAccountInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubAccountService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	return s.signUpFn(ctx, input)
}

func (s *stubAccountService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func adminContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.PrincipalKey, domain.Principal{
		UserID: "user_admin",
		Email:  "admin@winjhenshop.com",
		Role:   domain.RoleAdmin,
	})
	return c
}

func TestAccountHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		createFn: func(ctx context.Context, input ports.CreateAccountInput) (*domain.User, error) {
			if input.Role != domain.RoleEmployee {
				t.Fatalf("unexpected role: %s", input.Role)
			}
			if input.Profile.City != "Springfield" {
				t.Fatalf("profile not forwarded: %+v", input.Profile)
			}
			return &domain.User{
				ID:            "user_9",
				Email:         input.Email,
				FirstName:     input.FirstName,
				LastName:      input.LastName,
				Role:          input.Role,
				IsActive:      true,
				EmailVerified: true,
			}, nil
		},
	}
	handler := NewAccountHandler(stub)

	body := strings.NewReader(`{
		"email": "new.employee@winjhenshop.com",
		"password": "secret1",
		"first_name": "New",
		"last_name": "Employee",
		"role": "EMPLOYEE",
		"city": "Springfield"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/accounts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["role"] != "EMPLOYEE" || user["email_verified"] != true {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAccountHandler_Create_NonAdminPrincipal(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		createFn: func(ctx context.Context, input ports.CreateAccountInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub)

	body := strings.NewReader(`{"email":"x@winjhenshop.com","password":"secret1","first_name":"X","last_name":"Y","role":"EMPLOYEE"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/accounts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.PrincipalKey, domain.Principal{UserID: "user_2", Role: domain.RoleEmployee})

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAccountHandler_Create_RoleOutsideWhitelist(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		createFn: func(ctx context.Context, input ports.CreateAccountInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub)

	// ADMIN is not provisionable through this endpoint.
	body := strings.NewReader(`{"email":"x@winjhenshop.com","password":"secret1","first_name":"X","last_name":"Y","role":"ADMIN"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/accounts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAccountHandler_Create_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		createFn: func(ctx context.Context, input ports.CreateAccountInput) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	handler := NewAccountHandler(stub)

	body := strings.NewReader(`{"email":"dup@winjhenshop.com","password":"secret1","first_name":"X","last_name":"Y","role":"EMPLOYEE"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/accounts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	err := handler.Create(c)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountHandler_SignUp_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		signUpFn: func(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
			return &domain.User{
				ID:        "user_10",
				Email:     input.Email,
				FirstName: input.FirstName,
				LastName:  input.LastName,
				Role:      domain.RoleRetailCustomer,
				IsActive:  true,
			}, nil
		},
	}
	handler := NewAccountHandler(stub)

	// The role field is not part of the signup contract; sending one anyway
	// must not change the outcome.
	body := strings.NewReader(`{"email":"shopper@example.com","password":"secret1","first_name":"Sam","last_name":"Shopper","role":"ADMIN"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["role"] != "RETAIL_CUSTOMER" {
		t.Fatalf("unexpected role: %v", user["role"])
	}
}

func TestAccountHandler_Profile_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		profileFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "user_7" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &domain.User{
				ID:    userID,
				Email: "shopper@example.com",
				Role:  domain.RoleRetailCustomer,
			}, nil
		},
	}
	handler := NewAccountHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.PrincipalKey, domain.Principal{UserID: "user_7", Role: domain.RoleRetailCustomer})

	if err := handler.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "user_7" || resp["email"] != "shopper@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAccountHandler_Profile_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		profileFn: func(ctx context.Context, userID string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Profile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAccountHandler_SignUp_ShortPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		signUpFn: func(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub)

	body := strings.NewReader(`{"email":"shopper@example.com","password":"12345","first_name":"Sam","last_name":"Shopper"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SignUp(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
