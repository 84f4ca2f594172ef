package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winjhenshop/storefront-api/internal/api/metrics"
	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

// resetRequestedMessage is returned for every forgot-password request,
// matching or not, so responses carry no account-existence signal.
const resetRequestedMessage = "If an account with that email exists, a password reset link has been sent."

// PasswordHandler handles the forgot/reset password flow.
type PasswordHandler struct {
	resets ports.PasswordResetService
}

func NewPasswordHandler(resets ports.PasswordResetService) *PasswordHandler {
	return &PasswordHandler{resets: resets}
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type forgotPasswordResponse struct {
	Message string `json:"message"`
	// ResetToken is present only in development mode.
	ResetToken string `json:"reset_token,omitempty"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Forgot issues a reset token. The response is 200 with a generic message
// whether or not the email matched an account.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  forgotPasswordResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/forgot-password [post]
func (h *PasswordHandler) Forgot(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	metrics.PasswordResetRequestsTotal.Inc()

	result, err := h.resets.RequestReset(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, forgotPasswordResponse{
		Message:    resetRequestedMessage,
		ResetToken: result.Token,
	})
}

// Reset redeems a reset token and replaces the account password.
//
// @Summary      Reset password with a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Token and new password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /auth/reset-password [post]
func (h *PasswordHandler) Reset(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.resets.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, domain.ErrInvalidResetToken) {
			metrics.PasswordResetsCompletedTotal.WithLabelValues("invalid_token").Inc()
		}
		return err
	}

	metrics.PasswordResetsCompletedTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset successfully"})
}
