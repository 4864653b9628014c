package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/meetcute/client/internal/application/adapter"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

func TestFileTokenStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.vault")

	store, err := NewFileTokenStore(path, "device-secret")
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}

	tokens := adapter.TokenPair{
		AccessToken:  "access-token-value",
		RefreshToken: "refresh-token-value",
	}

	if err := store.Save(tokens); err != nil {
		t.Fatalf("unexpected error saving tokens: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error loading tokens: %v", err)
	}

	if loaded.AccessToken != tokens.AccessToken {
		t.Errorf("expected access token %q, got %q", tokens.AccessToken, loaded.AccessToken)
	}
	if loaded.RefreshToken != tokens.RefreshToken {
		t.Errorf("expected refresh token %q, got %q", tokens.RefreshToken, loaded.RefreshToken)
	}
}

func TestFileTokenStore_LoadMissingVault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.vault")

	store, err := NewFileTokenStore(path, "device-secret")
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}

	_, err = store.Load()
	if !errors.Is(err, domainerror.ErrNoSession) {
		t.Errorf("expected ErrNoSession for a missing vault, got %v", err)
	}
}

func TestFileTokenStore_WrongDeviceSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.vault")

	store, err := NewFileTokenStore(path, "device-secret")
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}
	if err := store.Save(adapter.TokenPair{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatalf("unexpected error saving tokens: %v", err)
	}

	reopened, err := NewFileTokenStore(path, "another-secret")
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}

	_, err = reopened.Load()
	if !errors.Is(err, domainerror.ErrNoSession) {
		t.Errorf("expected ErrNoSession when the device secret changed, got %v", err)
	}
}

func TestFileTokenStore_SaveReplacesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.vault")

	store, err := NewFileTokenStore(path, "device-secret")
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}

	if err := store.Save(adapter.TokenPair{AccessToken: "old", RefreshToken: "old"}); err != nil {
		t.Fatalf("unexpected error saving tokens: %v", err)
	}
	if err := store.Save(adapter.TokenPair{AccessToken: "new", RefreshToken: "new"}); err != nil {
		t.Fatalf("unexpected error saving tokens: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error loading tokens: %v", err)
	}
	if loaded.AccessToken != "new" {
		t.Errorf("expected replaced access token, got %q", loaded.AccessToken)
	}
}

func TestFileTokenStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.vault")

	store, err := NewFileTokenStore(path, "device-secret")
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}

	if err := store.Save(adapter.TokenPair{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatalf("unexpected error saving tokens: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error clearing vault: %v", err)
	}

	if _, err := store.Load(); !errors.Is(err, domainerror.ErrNoSession) {
		t.Errorf("expected ErrNoSession after clear, got %v", err)
	}

	// Clearing an already empty vault is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("unexpected error clearing empty vault: %v", err)
	}
}

func TestNewFileTokenStore_EmptyDeviceSecret(t *testing.T) {
	_, err := NewFileTokenStore(filepath.Join(t.TempDir(), "tokens.vault"), "")
	if err == nil {
		t.Error("expected error for empty device secret")
	}
}
