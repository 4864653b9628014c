package adapter

import "time"

// TokenStore persists the session token pair on the device.
type TokenStore interface {
	// Save writes the token pair, replacing any previous one.
	Save(tokens TokenPair) error

	// Load returns the stored token pair. It returns
	// domain ErrNoSession when nothing usable is stored.
	Load() (*TokenPair, error)

	// Clear removes any stored token pair.
	Clear() error
}

// TokenInspector reads claims from tokens held by the client. The client has
// no signing secret, so inspection never verifies signatures.
type TokenInspector interface {
	// ExpiresAt returns the expiry of the given access token.
	ExpiresAt(token string) (time.Time, error)
}
