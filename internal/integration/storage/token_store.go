package storage

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"github.com/meetcute/client/internal/application/adapter"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// scrypt parameters for deriving the vault key from the device secret.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// vaultSalt is fixed; the per-install device secret carries the entropy.
const vaultSalt = "meetcute-token-vault-v1"

// FileTokenStore implements adapter.TokenStore as an encrypted file, the
// closest portable analog to a platform keychain. Tokens are sealed with
// XChaCha20-Poly1305 under a key derived from the device secret.
type FileTokenStore struct {
	path string
	key  []byte
}

// NewFileTokenStore creates a token store writing to the given path.
func NewFileTokenStore(path, deviceSecret string) (*FileTokenStore, error) {
	if deviceSecret == "" {
		return nil, errors.New("device secret must not be empty")
	}

	key, err := scrypt.Key([]byte(deviceSecret), []byte(vaultSalt), scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive vault key: %w", err)
	}

	return &FileTokenStore{path: path, key: key}, nil
}

// Save writes the token pair, replacing any previous one.
func (s *FileTokenStore) Save(tokens adapter.TokenPair) error {
	payload, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return fmt.Errorf("init vault cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, payload, nil)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create vault directory: %w", err)
	}
	if err := os.WriteFile(s.path, sealed, 0o600); err != nil {
		return fmt.Errorf("write vault: %w", err)
	}

	return nil
}

// Load returns the stored token pair. A missing or undecryptable vault
// (e.g. the device secret changed) reads as no session.
func (s *FileTokenStore) Load() (*adapter.TokenPair, error) {
	sealed, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainerror.ErrNoSession
		}
		return nil, fmt.Errorf("read vault: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("init vault cipher: %w", err)
	}

	if len(sealed) < aead.NonceSize() {
		return nil, fmt.Errorf("%w: vault truncated", domainerror.ErrNoSession)
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	payload, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: vault unreadable", domainerror.ErrNoSession)
	}

	var tokens adapter.TokenPair
	if err := json.Unmarshal(payload, &tokens); err != nil {
		return nil, fmt.Errorf("decode tokens: %w", err)
	}

	return &tokens, nil
}

// Clear removes any stored token pair.
func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove vault: %w", err)
	}
	return nil
}
