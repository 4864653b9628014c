package adapter

import (
	"context"

	"github.com/meetcute/client/internal/domain/entity"
)

// EventCache stores the last fetched event listing for offline browsing.
type EventCache interface {
	// ReplaceUpcoming swaps the cached listing for the given one.
	ReplaceUpcoming(ctx context.Context, events []entity.DateEvent) error

	// ListUpcoming returns the cached listing, soonest first. It returns
	// domain ErrEventsNotCached when the cache is empty.
	ListUpcoming(ctx context.Context) ([]entity.DateEvent, error)
}

// ProfileCache stores the signed-in user's own profile.
type ProfileCache interface {
	// Save upserts the cached profile.
	Save(ctx context.Context, profile entity.Profile) error

	// Get returns the cached profile, or domain ErrProfileNotCached.
	Get(ctx context.Context) (*entity.Profile, error)
}
