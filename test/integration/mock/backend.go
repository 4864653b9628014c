// Package mock provides a scripted stand-in for the MeetCute backend API.
package mock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// ReceivedRequest captures one request the client sent to the backend.
type ReceivedRequest struct {
	Path    string
	Body    map[string]any
	Headers http.Header
	Query   url.Values
}

type scriptedResponse struct {
	status int
	body   any
}

// Backend is a scripted HTTP stand-in for the remote API. Scenarios script
// responses per method and path, run the client against it, and assert on
// what the client actually sent. Path patterns may use "*" to match one
// segment, e.g. "/v1/events/*/join-requests".
type Backend struct {
	mu        sync.Mutex
	server    *httptest.Server
	responses map[string][]scriptedResponse
	received  map[string][]ReceivedRequest
}

// NewBackend creates a stopped backend mock.
func NewBackend() *Backend {
	return &Backend{
		responses: map[string][]scriptedResponse{},
		received:  map[string][]ReceivedRequest{},
	}
}

// Start begins serving on a random local port.
func (b *Backend) Start() {
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
}

// URL returns the base URL the client should be pointed at.
func (b *Backend) URL() string {
	return b.server.URL
}

// Close stops the server. Requests sent afterwards fail at the transport
// level, which is how scenarios simulate an unreachable backend.
func (b *Backend) Close() {
	if b.server != nil {
		b.server.Close()
	}
}

// Script queues one response for the given method and path pattern.
// Responses for the same pattern are served in the order they were queued.
func (b *Backend) Script(method, pattern string, status int, body any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := method + " " + pattern
	b.responses[key] = append(b.responses[key], scriptedResponse{status: status, body: body})
}

// Received returns the requests recorded for the given method and path
// pattern, in arrival order.
func (b *Backend) Received(method, pattern string) []ReceivedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	var matched []ReceivedRequest
	for key, requests := range b.received {
		recordedMethod, recordedPath, _ := strings.Cut(key, " ")
		if recordedMethod == method && matchPath(pattern, recordedPath) {
			matched = append(matched, requests...)
		}
	}
	return matched
}

// RequestCount returns how many requests matched the method and pattern.
func (b *Backend) RequestCount(method, pattern string) int {
	return len(b.Received(method, pattern))
}

// AllReceived returns every request that reached the backend, regardless of
// method or path.
func (b *Backend) AllReceived() []ReceivedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	var all []ReceivedRequest
	for _, requests := range b.received {
		all = append(all, requests...)
	}
	return all
}

// TotalRequests returns how many requests reached the backend in total.
func (b *Backend) TotalRequests() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	total := 0
	for _, requests := range b.received {
		total += len(requests)
	}
	return total
}

func (b *Backend) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	b.mu.Lock()
	key := r.Method + " " + r.URL.Path
	b.received[key] = append(b.received[key], ReceivedRequest{
		Path:    r.URL.Path,
		Body:    body,
		Headers: r.Header.Clone(),
		Query:   r.URL.Query(),
	})
	response := b.nextResponse(r.Method, r.URL.Path)
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.status)
	if response.body != nil {
		payload, _ := json.Marshal(response.body)
		_, _ = w.Write(payload)
	} else {
		_, _ = w.Write([]byte("{}"))
	}
}

// nextResponse pops the next scripted response matching the request. An
// unscripted request gets an empty 200 so scenarios only script what they
// care about. Callers must hold the mutex.
func (b *Backend) nextResponse(method, path string) scriptedResponse {
	for key, queue := range b.responses {
		scriptedMethod, pattern, _ := strings.Cut(key, " ")
		if scriptedMethod != method || !matchPath(pattern, path) || len(queue) == 0 {
			continue
		}
		next := queue[0]
		b.responses[key] = queue[1:]
		return next
	}
	return scriptedResponse{status: http.StatusOK}
}

// matchPath matches a path against a pattern where "*" stands in for one
// segment.
func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
