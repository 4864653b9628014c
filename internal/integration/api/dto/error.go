// Package dto defines the wire shapes of the MeetCute HTTP API and their
// conversions to domain entities.
package dto

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
