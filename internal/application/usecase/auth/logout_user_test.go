package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/meetcute/client/internal/application/adapter"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogoutUserUseCase_Execute(t *testing.T) {
	api := &fakeAuthAPI{}
	store := &fakeTokenStore{}
	_ = store.Save(adapter.TokenPair{AccessToken: "access", RefreshToken: "refresh"})

	useCase := NewLogoutUserUseCase(api, store, discardLogger())

	if err := useCase.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !api.logoutCalled {
		t.Error("expected the logout endpoint to be called")
	}
	if !store.cleared {
		t.Error("expected the local session to be cleared")
	}
}

func TestLogoutUserUseCase_FailedRevocationStillClearsLocally(t *testing.T) {
	api := &fakeAuthAPI{logoutErr: domainerror.ErrUnavailable}
	store := &fakeTokenStore{}
	_ = store.Save(adapter.TokenPair{AccessToken: "access", RefreshToken: "refresh"})

	useCase := NewLogoutUserUseCase(api, store, discardLogger())

	if err := useCase.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.cleared {
		t.Error("expected the local session to be cleared even when revocation fails")
	}
}

func TestLogoutUserUseCase_NoSessionIsNoOp(t *testing.T) {
	api := &fakeAuthAPI{}
	useCase := NewLogoutUserUseCase(api, &fakeTokenStore{}, discardLogger())

	if err := useCase.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.logoutCalled {
		t.Error("expected no revocation call without a stored session")
	}
}
