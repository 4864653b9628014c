package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/meetcute/client/internal/domain/entity"
)

// RegisterRequest is the body for POST /v1/auth/register.
type RegisterRequest struct {
	Email         string `json:"email"`
	DisplayName   string `json:"display_name"`
	Password      string `json:"password"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// LoginRequest is the body for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body for POST /v1/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest is the body for POST /v1/auth/logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse is the session envelope returned by register and login.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse is returned by POST /v1/auth/refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserResponse is the account shape embedded in auth responses.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToUser converts the wire shape to the domain entity.
func (r UserResponse) ToUser() (entity.User, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return entity.User{}, fmt.Errorf("parse user id: %w", err)
	}

	return entity.User{
		ID:          id,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		CreatedAt:   r.CreatedAt,
	}, nil
}
