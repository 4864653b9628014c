package auth

import (
	"context"
	"time"

	"github.com/meetcute/client/internal/application/adapter"
)

// RefreshSessionOutput reports whether a refresh round-trip happened.
type RefreshSessionOutput struct {
	Refreshed bool
	ExpiresAt time.Time
}

// RefreshSessionUseCase keeps the stored access token fresh. It is called
// before authenticated operations and refreshes ahead of expiry by a
// configurable skew so in-flight requests never race the deadline.
type RefreshSessionUseCase struct {
	authAPI     adapter.AuthAPI
	tokenStore  adapter.TokenStore
	inspector   adapter.TokenInspector
	refreshSkew time.Duration
}

// NewRefreshSessionUseCase creates a new RefreshSessionUseCase instance.
func NewRefreshSessionUseCase(
	authAPI adapter.AuthAPI,
	tokenStore adapter.TokenStore,
	inspector adapter.TokenInspector,
	refreshSkew time.Duration,
) *RefreshSessionUseCase {
	return &RefreshSessionUseCase{
		authAPI:     authAPI,
		tokenStore:  tokenStore,
		inspector:   inspector,
		refreshSkew: refreshSkew,
	}
}

// Execute refreshes the stored token pair when the access token is within
// the skew of its expiry. It is a no-op while the token is still fresh.
func (uc *RefreshSessionUseCase) Execute(ctx context.Context) (*RefreshSessionOutput, error) {
	tokens, err := uc.tokenStore.Load()
	if err != nil {
		return nil, err
	}

	expiresAt, err := uc.inspector.ExpiresAt(tokens.AccessToken)
	if err == nil && time.Until(expiresAt) > uc.refreshSkew {
		return &RefreshSessionOutput{Refreshed: false, ExpiresAt: expiresAt}, nil
	}

	// Unreadable expiry is treated like an expired token: try the refresh
	// endpoint, which is the authority either way.
	fresh, err := uc.authAPI.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		return nil, err
	}

	if err := uc.tokenStore.Save(*fresh); err != nil {
		return nil, err
	}

	freshExpiry, err := uc.inspector.ExpiresAt(fresh.AccessToken)
	if err != nil {
		freshExpiry = time.Time{}
	}

	return &RefreshSessionOutput{Refreshed: true, ExpiresAt: freshExpiry}, nil
}
