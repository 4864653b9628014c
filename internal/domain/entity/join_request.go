package entity

import (
	"time"

	"github.com/google/uuid"
)

// JoinRequestStatus represents the state of a request to join a date event.
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestAccepted JoinRequestStatus = "accepted"
	JoinRequestDeclined JoinRequestStatus = "declined"
)

// JoinRequest represents one user's request to join another user's event.
type JoinRequest struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	RequesterID   uuid.UUID
	RequesterName string
	Message       string
	Status        JoinRequestStatus
	CreatedAt     time.Time
}

// IsPending reports whether the request still awaits an answer from the host.
func (r *JoinRequest) IsPending() bool {
	return r.Status == JoinRequestPending
}
