// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/application/form"
	"github.com/meetcute/client/internal/domain/entity"
)

// RegisterUserInput represents the signup form submission.
type RegisterUserInput struct {
	Email         string
	DisplayName   string
	Password      string
	TermsAccepted bool
}

// RegisterUserOutput represents the outcome of a successful signup.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase creates an account and stores the initial session.
type RegisterUserUseCase struct {
	authAPI    adapter.AuthAPI
	tokenStore adapter.TokenStore
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(authAPI adapter.AuthAPI, tokenStore adapter.TokenStore) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		authAPI:    authAPI,
		tokenStore: tokenStore,
	}
}

// Execute validates the signup form and creates the account. Nothing reaches
// the network while the form, the password policy included, reports problems.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	signupForm := form.SignupForm{
		Email:         input.Email,
		DisplayName:   input.DisplayName,
		Password:      input.Password,
		TermsAccepted: input.TermsAccepted,
	}
	if err := signupForm.Validate(); err != nil {
		return nil, err
	}

	session, err := uc.authAPI.Register(ctx, input.Email, input.DisplayName, input.Password)
	if err != nil {
		return nil, err
	}

	if err := uc.tokenStore.Save(session.Tokens); err != nil {
		return nil, err
	}

	return &RegisterUserOutput{User: &session.User}, nil
}
