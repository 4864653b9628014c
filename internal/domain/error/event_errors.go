package error

import "errors"

// Date event domain errors.
var (
	// ErrEventNotFound is returned when the requested event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrEventNotJoinable is returned when the event is full, cancelled, or
	// already started.
	ErrEventNotJoinable = errors.New("event can no longer be joined")

	// ErrOwnEvent is returned when a user tries to join their own event.
	ErrOwnEvent = errors.New("cannot join your own event")

	// ErrEventsNotCached is returned when no cached events are available for
	// offline browsing.
	ErrEventsNotCached = errors.New("no cached events available")

	// ErrProfileNotCached is returned when no cached profile is available.
	ErrProfileNotCached = errors.New("no cached profile available")
)

// Date event API error codes.
const (
	CodeEventNotFound    Code = "EVT-010001"
	CodeEventNotJoinable Code = "EVT-010002"
	CodeOwnEvent         Code = "EVT-010003"
)
