package service

import (
	"time"
)

// TokenClaims are the claims the storefront reads from a backend access token.
type TokenClaims struct {
	Subject   string
	Roles     []string
	ExpiresAt time.Time // Zero when the token carries no expiry.
}

// Expired reports whether the token is expired at now, allowing for leeway.
func (c *TokenClaims) Expired(now time.Time, leeway time.Duration) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}

	return !now.Add(leeway).Before(c.ExpiresAt)
}

// TokenInspector reads backend-issued tokens. The storefront cannot verify
// signatures (the backend owns the secret); it only decides when to refresh.
type TokenInspector interface {
	Inspect(token string) (*TokenClaims, error)
}
