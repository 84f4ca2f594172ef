package domain

import "errors"

var (
	// ErrValidation marks caller-correctable input problems (missing or
	// malformed fields).
	ErrValidation = errors.New("invalid input")

	// ErrDuplicateEmail is returned when account creation targets an email
	// that already has a record.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrRoleNotAllowed is returned when admin-initiated creation names a
	// role outside the provisioning whitelist.
	ErrRoleNotAllowed = errors.New("role not allowed")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidResetToken covers both a token that was never issued and a
	// token past its expiry. Collapsed into one error so callers cannot
	// learn which case applies.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrTooManyAttempts is returned when the login throttle trips.
	ErrTooManyAttempts = errors.New("too many attempts")

	// ErrUserNotFound is internal to repositories; services translate it
	// before it reaches a caller.
	ErrUserNotFound = errors.New("user not found")

	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrForbidden       = errors.New("access forbidden")
)
