package adapter

import "time"

// Identity is the caller identity extracted from a verified bearer token.
type Identity struct {
	UserID    string
	ExpiresAt time.Time
}

// IdentityVerifier verifies bearer tokens issued by the external identity provider.
type IdentityVerifier interface {
	// Verify validates the token and returns the identity it carries.
	Verify(token string) (*Identity, error)
}
