// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/meetcute/client/internal/application/adapter"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// tokenInspector implements the adapter.TokenInspector interface.
type tokenInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector creates a new token inspector instance.
func NewTokenInspector() adapter.TokenInspector {
	return &tokenInspector{parser: jwt.NewParser()}
}

// ExpiresAt returns the expiry claim of the given access token. The client
// holds no signing secret, so the token is decoded without verification;
// the backend verifies signatures on every call anyway.
func (t *tokenInspector) ExpiresAt(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := t.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, fmt.Errorf("%w: missing exp claim", domainerror.ErrInvalidToken)
	}

	return expiry.Time, nil
}
