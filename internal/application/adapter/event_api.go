package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meetcute/client/internal/domain/entity"
)

// EventFilter narrows an event listing.
type EventFilter struct {
	// City limits results to events in one city. Empty means anywhere.
	City string
	// From excludes events starting before the given time.
	From time.Time
}

// EventAPI wraps the date event endpoints of the remote API.
type EventAPI interface {
	// List fetches events matching the filter, soonest first.
	List(ctx context.Context, filter EventFilter) ([]entity.DateEvent, error)

	// Create publishes a new event hosted by the signed-in user.
	Create(ctx context.Context, event entity.DateEvent) (*entity.DateEvent, error)

	// Get fetches a single event.
	Get(ctx context.Context, id uuid.UUID) (*entity.DateEvent, error)
}
