// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/meetcute/client/internal/domain/entity"
)

// TokenPair holds the access/refresh token pair issued by the backend.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthSession is the result of a successful register or login call.
type AuthSession struct {
	Tokens TokenPair
	User   entity.User
}

// AuthAPI wraps the account endpoints of the remote API.
type AuthAPI interface {
	// Register creates an account and returns the initial session.
	Register(ctx context.Context, email, displayName, password string) (*AuthSession, error)

	// Login exchanges credentials for a session.
	Login(ctx context.Context, email, password string) (*AuthSession, error)

	// Refresh exchanges a refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes the refresh token server-side.
	Logout(ctx context.Context, refreshToken string) error
}
