package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/meetcute/client/internal/application/adapter"
	domainerror "github.com/meetcute/client/internal/domain/error"
	"github.com/meetcute/client/internal/integration/api/dto"
)

// AuthAPI implements adapter.AuthAPI against the remote API.
type AuthAPI struct {
	client *Client
}

// NewAuthAPI creates a new auth API wrapper.
func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

// Register creates an account and returns the initial session.
func (a *AuthAPI) Register(ctx context.Context, email, displayName, password string) (*adapter.AuthSession, error) {
	req := dto.RegisterRequest{
		Email:         email,
		DisplayName:   displayName,
		Password:      password,
		TermsAccepted: true,
	}

	var resp dto.AuthResponse
	if err := a.client.do(ctx, http.MethodPost, "/v1/auth/register", req, &resp, false); err != nil {
		return nil, err
	}

	return toAuthSession(resp)
}

// Login exchanges credentials for a session.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*adapter.AuthSession, error) {
	req := dto.LoginRequest{Email: email, Password: password}

	var resp dto.AuthResponse
	if err := a.client.do(ctx, http.MethodPost, "/v1/auth/login", req, &resp, false); err != nil {
		return nil, err
	}

	return toAuthSession(resp)
}

// Refresh exchanges a refresh token for a new token pair.
func (a *AuthAPI) Refresh(ctx context.Context, refreshToken string) (*adapter.TokenPair, error) {
	req := dto.RefreshRequest{RefreshToken: refreshToken}

	var resp dto.TokenResponse
	if err := a.client.do(ctx, http.MethodPost, "/v1/auth/refresh", req, &resp, false); err != nil {
		return nil, err
	}

	return &adapter.TokenPair{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Logout revokes the refresh token server-side.
func (a *AuthAPI) Logout(ctx context.Context, refreshToken string) error {
	req := dto.LogoutRequest{RefreshToken: refreshToken}
	return a.client.do(ctx, http.MethodPost, "/v1/auth/logout", req, nil, false)
}

func toAuthSession(resp dto.AuthResponse) (*adapter.AuthSession, error) {
	user, err := resp.User.ToUser()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrUnexpectedResponse, err)
	}

	return &adapter.AuthSession{
		Tokens: adapter.TokenPair{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
		},
		User: user,
	}, nil
}
