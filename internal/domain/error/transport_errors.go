package error

import "errors"

// Transport-level errors raised by the API client.
var (
	// ErrUnavailable is returned when the backend cannot be reached.
	// Callers may fall back to cached data; the client never retries.
	ErrUnavailable = errors.New("backend unreachable")

	// ErrUnexpectedResponse is returned when a response cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response from backend")
)

// APIError carries the structured error body returned by the remote API.
// Err holds the mapped domain sentinel so callers can use errors.Is.
type APIError struct {
	Status  int
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "api error"
}

// Unwrap exposes the mapped domain sentinel.
func (e *APIError) Unwrap() error {
	return e.Err
}
