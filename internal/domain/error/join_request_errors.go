package error

import "errors"

// Join request domain errors.
var (
	// ErrJoinRequestNotFound is returned when the request does not exist.
	ErrJoinRequestNotFound = errors.New("join request not found")

	// ErrAlreadyRequested is returned when the user already has a pending
	// request for the event.
	ErrAlreadyRequested = errors.New("a join request for this event is already pending")

	// ErrRequestAlreadyAnswered is returned when responding to a request
	// that was already accepted or declined.
	ErrRequestAlreadyAnswered = errors.New("join request has already been answered")

	// ErrNotEventHost is returned when a non-host tries to answer a request.
	ErrNotEventHost = errors.New("only the event host can answer join requests")
)

// Join request API error codes.
const (
	CodeJoinRequestNotFound    Code = "REQ-010001"
	CodeAlreadyRequested       Code = "REQ-010002"
	CodeRequestAlreadyAnswered Code = "REQ-010003"
	CodeNotEventHost           Code = "REQ-010004"
)
