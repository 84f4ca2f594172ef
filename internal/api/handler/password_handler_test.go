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

	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

type stubResetService struct {
	requestFn func(ctx context.Context, email string) (*ports.ResetRequestResult, error)
	resetFn   func(ctx context.Context, token, newPassword string) error
}

func (s *stubResetService) RequestReset(ctx context.Context, email string) (*ports.ResetRequestResult, error) {
	return s.requestFn(ctx, email)
}

func (s *stubResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.resetFn(ctx, token, newPassword)
}

func TestPasswordHandler_Forgot_KnownAndUnknownLookAlike(t *testing.T) {
	e := newTestEcho()

	// Whether the email matched a record or not, the handler must produce the
	// same 200 response with the same message.
	for name, result := range map[string]*ports.ResetRequestResult{
		"known":   {},
		"unknown": {},
	} {
		stub := &stubResetService{
			requestFn: func(ctx context.Context, email string) (*ports.ResetRequestResult, error) {
				return result, nil
			},
		}
		handler := NewPasswordHandler(stub)

		body := strings.NewReader(`{"email":"someone@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.Forgot(c); err != nil {
			t.Fatalf("%s: handler error: %v", name, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", name, rec.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: invalid json: %v", name, err)
		}
		if resp["message"] != resetRequestedMessage {
			t.Fatalf("%s: unexpected message: %v", name, resp["message"])
		}
		if _, present := resp["reset_token"]; present {
			t.Fatalf("%s: reset_token must be omitted when empty", name)
		}
	}
}

func TestPasswordHandler_Forgot_DevModeEchoesToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubResetService{
		requestFn: func(ctx context.Context, email string) (*ports.ResetRequestResult, error) {
			return &ports.ResetRequestResult{Token: "deadbeef"}, nil
		},
	}
	handler := NewPasswordHandler(stub)

	body := strings.NewReader(`{"email":"admin@winjhenshop.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Forgot(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["reset_token"] != "deadbeef" {
		t.Fatalf("expected echoed token, got %v", resp["reset_token"])
	}
}

func TestPasswordHandler_Forgot_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubResetService{
		requestFn: func(ctx context.Context, email string) (*ports.ResetRequestResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPasswordHandler(stub)

	body := strings.NewReader(`{"email":"not-an-email"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Forgot(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPasswordHandler_Reset_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubResetService{
		resetFn: func(ctx context.Context, token, newPassword string) error {
			if token != "sometoken" || newPassword != "newpass1" {
				t.Fatalf("unexpected args: %s %s", token, newPassword)
			}
			return nil
		},
	}
	handler := NewPasswordHandler(stub)

	body := strings.NewReader(`{"token":"sometoken","new_password":"newpass1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Reset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPasswordHandler_Reset_InvalidToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubResetService{
		resetFn: func(ctx context.Context, token, newPassword string) error {
			return domain.ErrInvalidResetToken
		},
	}
	handler := NewPasswordHandler(stub)

	body := strings.NewReader(`{"token":"expired","new_password":"newpass1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Reset(c)
	if !errors.Is(err, domain.ErrInvalidResetToken) {
		t.Fatalf("expected ErrInvalidResetToken, got %v", err)
	}
}

func TestPasswordHandler_Reset_ShortPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubResetService{
		resetFn: func(ctx context.Context, token, newPassword string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewPasswordHandler(stub)

	body := strings.NewReader(`{"token":"sometoken","new_password":"12345"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Reset(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
