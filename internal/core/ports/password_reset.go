package ports

import "context"

// ResetRequestResult is returned by RequestReset. The outcome is identical
// whether or not the email matched a record; Token is populated only when the
// service runs in development mode and a record matched.
type ResetRequestResult struct {
	Token string
}

// PasswordResetService handles reset-token issuance and redemption.
type PasswordResetService interface {
	// RequestReset issues a reset token for the account with the given
	// email. Unknown emails succeed silently (anti-enumeration).
	RequestReset(ctx context.Context, email string) (*ResetRequestResult, error)
	// ResetPassword redeems a token: validates it, replaces the password,
	// and clears the token so it can never be used twice.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
