package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/meetcute/client/internal/domain/entity"
)

// CreateJoinRequestRequest is the body for POST /v1/events/{id}/join-requests.
type CreateJoinRequestRequest struct {
	Message string `json:"message,omitempty"`
}

// RespondToJoinRequestRequest is the body for POST /v1/join-requests/{id}/respond.
type RespondToJoinRequestRequest struct {
	Action string `json:"action"` // "accept" or "decline"
}

// JoinRequestResponse is the join request shape returned by the API.
type JoinRequestResponse struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	RequesterID   string    `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// JoinRequestListResponse is returned by GET /v1/events/{id}/join-requests.
type JoinRequestListResponse struct {
	Requests []JoinRequestResponse `json:"requests"`
}

// ToJoinRequest converts the wire shape to the domain entity.
func (r JoinRequestResponse) ToJoinRequest() (entity.JoinRequest, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return entity.JoinRequest{}, fmt.Errorf("parse join request id: %w", err)
	}
	eventID, err := uuid.Parse(r.EventID)
	if err != nil {
		return entity.JoinRequest{}, fmt.Errorf("parse event id: %w", err)
	}
	requesterID, err := uuid.Parse(r.RequesterID)
	if err != nil {
		return entity.JoinRequest{}, fmt.Errorf("parse requester id: %w", err)
	}

	return entity.JoinRequest{
		ID:            id,
		EventID:       eventID,
		RequesterID:   requesterID,
		RequesterName: r.RequesterName,
		Message:       r.Message,
		Status:        entity.JoinRequestStatus(r.Status),
		CreatedAt:     r.CreatedAt,
	}, nil
}
