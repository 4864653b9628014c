package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetcute/client/internal/domain/entity"
)

// JoinRequestAPI wraps the join request endpoints of the remote API.
type JoinRequestAPI interface {
	// Create sends a request to join an event.
	Create(ctx context.Context, eventID uuid.UUID, message string) (*entity.JoinRequest, error)

	// ListForEvent fetches the requests for an event the user hosts.
	ListForEvent(ctx context.Context, eventID uuid.UUID) ([]entity.JoinRequest, error)

	// Respond accepts or declines a pending request.
	Respond(ctx context.Context, requestID uuid.UUID, accept bool) (*entity.JoinRequest, error)
}
