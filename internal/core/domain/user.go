package domain

import "time"

// User is the sole persisted account entity. Email is the unique lookup key.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	PasswordHash  string `json:"-"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Role          Role   `json:"role"`
	IsActive      bool   `json:"is_active"`
	EmailVerified bool   `json:"email_verified"`

	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`

	// ResetToken and ResetTokenExpiry are set together by token issuance and
	// cleared together by redemption. Never one without the other.
	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe to cross the service boundary: the password
// hash and reset-token fields are stripped.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordHash = ""
	clean.ResetToken = ""
	clean.ResetTokenExpiry = nil
	return &clean
}

// Principal is the transient authenticated identity derived from a successful
// login. It is carried by the session token and never persisted.
type Principal struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
}

// NewPrincipal derives the session principal from an authenticated user.
func NewPrincipal(u *User) Principal {
	return Principal{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}
