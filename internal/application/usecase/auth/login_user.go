package auth

import (
	"context"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/domain/entity"
)

// LoginUserInput represents the login form submission.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the outcome of a successful login.
type LoginUserOutput struct {
	User *entity.User
}

// LoginUserUseCase signs the user in and stores the session.
type LoginUserUseCase struct {
	authAPI    adapter.AuthAPI
	tokenStore adapter.TokenStore
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(authAPI adapter.AuthAPI, tokenStore adapter.TokenStore) *LoginUserUseCase {
	return &LoginUserUseCase{
		authAPI:    authAPI,
		tokenStore: tokenStore,
	}
}

// Execute exchanges credentials for a session and persists the tokens.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	session, err := uc.authAPI.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	if err := uc.tokenStore.Save(session.Tokens); err != nil {
		return nil, err
	}

	return &LoginUserOutput{User: &session.User}, nil
}
