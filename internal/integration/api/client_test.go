package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/meetcute/client/internal/application/adapter"
	domainerror "github.com/meetcute/client/internal/domain/error"
	"github.com/meetcute/client/internal/integration/api/dto"
)

// memoryTokenStore is an in-memory adapter.TokenStore for tests.
type memoryTokenStore struct {
	tokens *adapter.TokenPair
}

func (s *memoryTokenStore) Save(tokens adapter.TokenPair) error {
	s.tokens = &tokens
	return nil
}

func (s *memoryTokenStore) Load() (*adapter.TokenPair, error) {
	if s.tokens == nil {
		return nil, domainerror.ErrNoSession
	}
	return s.tokens, nil
}

func (s *memoryTokenStore) Clear() error {
	s.tokens = nil
	return nil
}

func newTestClient(baseURL string, tokens adapter.TokenStore) *Client {
	return NewClient(Options{
		BaseURL:   baseURL,
		UserAgent: "meetcute-client-test",
		Tokens:    tokens,
	})
}

func TestClient_LoginRequestShape(t *testing.T) {
	userID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected an X-Request-ID header on every request")
		}
		if r.Header.Get("User-Agent") != "meetcute-client-test" {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}

		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if req.Email != "ana@example.com" {
			t.Errorf("expected email in request body, got %q", req.Email)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.AuthResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User: dto.UserResponse{
				ID:          userID,
				Email:       "ana@example.com",
				DisplayName: "Ana",
			},
		})
	}))
	defer server.Close()

	authAPI := NewAuthAPI(newTestClient(server.URL, &memoryTokenStore{}))

	session, err := authAPI.Login(context.Background(), "ana@example.com", "C0ffee&Cake")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Tokens.AccessToken != "access" {
		t.Errorf("expected access token from response, got %q", session.Tokens.AccessToken)
	}
	if session.User.ID.String() != userID {
		t.Errorf("expected user id %s, got %s", userID, session.User.ID)
	}
}

func TestClient_AuthenticatedRequestsCarryBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer stored-access-token" {
			t.Errorf("expected bearer header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.EventListResponse{})
	}))
	defer server.Close()

	store := &memoryTokenStore{}
	_ = store.Save(adapter.TokenPair{AccessToken: "stored-access-token", RefreshToken: "r"})

	eventAPI := NewEventAPI(newTestClient(server.URL, store))

	if _, err := eventAPI.List(context.Background(), adapter.EventFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_AuthenticatedWithoutSession(t *testing.T) {
	// No request must leave the device when there is nothing to send as a
	// bearer token.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected no request without a stored session")
	}))
	defer server.Close()

	eventAPI := NewEventAPI(newTestClient(server.URL, &memoryTokenStore{}))

	_, err := eventAPI.List(context.Background(), adapter.EventFilter{})
	if !errors.Is(err, domainerror.ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestClient_ErrorCodeMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     dto.ErrorResponse
		sentinel error
	}{
		{
			name:     "email already exists",
			status:   http.StatusConflict,
			body:     dto.ErrorResponse{Error: "email already registered", Code: "AUTH-010001"},
			sentinel: domainerror.ErrEmailAlreadyExists,
		},
		{
			name:     "invalid credentials",
			status:   http.StatusUnauthorized,
			body:     dto.ErrorResponse{Error: "invalid credentials", Code: "AUTH-020001"},
			sentinel: domainerror.ErrInvalidCredentials,
		},
		{
			name:     "expired token",
			status:   http.StatusUnauthorized,
			body:     dto.ErrorResponse{Error: "token expired", Code: "AUTH-030002"},
			sentinel: domainerror.ErrExpiredToken,
		},
		{
			name:     "unknown code falls back on status",
			status:   http.StatusUnauthorized,
			body:     dto.ErrorResponse{Error: "nope"},
			sentinel: domainerror.ErrInvalidToken,
		},
		{
			name:     "service unavailable",
			status:   http.StatusServiceUnavailable,
			body:     dto.ErrorResponse{Error: "maintenance"},
			sentinel: domainerror.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			authAPI := NewAuthAPI(newTestClient(server.URL, &memoryTokenStore{}))

			_, err := authAPI.Login(context.Background(), "ana@example.com", "C0ffee&Cake")
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected sentinel %v, got %v", tt.sentinel, err)
			}

			var apiErr *domainerror.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected an APIError, got %T", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.Status)
			}
			if tt.body.Error != "" && apiErr.Message != tt.body.Error {
				t.Errorf("expected message %q, got %q", tt.body.Error, apiErr.Message)
			}
		})
	}
}

func TestClient_UnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	authAPI := NewAuthAPI(newTestClient(server.URL, &memoryTokenStore{}))

	_, err := authAPI.Login(context.Background(), "ana@example.com", "C0ffee&Cake")
	if !errors.Is(err, domainerror.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_MalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	authAPI := NewAuthAPI(newTestClient(server.URL, &memoryTokenStore{}))

	_, err := authAPI.Login(context.Background(), "ana@example.com", "C0ffee&Cake")
	if !errors.Is(err, domainerror.ErrUnexpectedResponse) {
		t.Errorf("expected ErrUnexpectedResponse, got %v", err)
	}
}

func TestClient_EventListQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("city"); got != "Lisbon" {
			t.Errorf("expected city filter in query, got %q", got)
		}
		if !strings.HasPrefix(r.URL.Path, "/v1/events") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.EventListResponse{})
	}))
	defer server.Close()

	store := &memoryTokenStore{}
	_ = store.Save(adapter.TokenPair{AccessToken: "a", RefreshToken: "r"})

	eventAPI := NewEventAPI(newTestClient(server.URL, store))

	events, err := eventAPI.List(context.Background(), adapter.EventFilter{City: "Lisbon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected empty listing, got %d events", len(events))
	}
}
