package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/meetcute/client/internal/application/adapter"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// LogoutUserUseCase revokes the session server-side and clears local state.
type LogoutUserUseCase struct {
	authAPI    adapter.AuthAPI
	tokenStore adapter.TokenStore
	logger     *slog.Logger
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(authAPI adapter.AuthAPI, tokenStore adapter.TokenStore, logger *slog.Logger) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		authAPI:    authAPI,
		tokenStore: tokenStore,
		logger:     logger,
	}
}

// Execute signs the user out. The local session is always cleared; a failed
// revocation call is logged but does not keep the user signed in.
func (uc *LogoutUserUseCase) Execute(ctx context.Context) error {
	tokens, err := uc.tokenStore.Load()
	if err != nil {
		if errors.Is(err, domainerror.ErrNoSession) {
			return nil
		}
		return err
	}

	if err := uc.authAPI.Logout(ctx, tokens.RefreshToken); err != nil {
		uc.logger.Warn("failed to revoke session on backend", "error", err)
	}

	return uc.tokenStore.Clear()
}
