// Package event contains date event use cases.
package event

import (
	"context"
	"errors"
	"log/slog"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// BrowseEventsInput narrows the event listing.
type BrowseEventsInput struct {
	City string
}

// BrowseEventsOutput carries the listing and where it came from.
type BrowseEventsOutput struct {
	Events []entity.DateEvent
	// FromCache is true when the backend was unreachable and the cached
	// listing was returned instead.
	FromCache bool
}

// BrowseEventsUseCase lists upcoming events, falling back to the on-device
// cache when offline. Successful fetches replace the cached listing.
type BrowseEventsUseCase struct {
	eventAPI adapter.EventAPI
	cache    adapter.EventCache
	logger   *slog.Logger
}

// NewBrowseEventsUseCase creates a new BrowseEventsUseCase instance.
func NewBrowseEventsUseCase(eventAPI adapter.EventAPI, cache adapter.EventCache, logger *slog.Logger) *BrowseEventsUseCase {
	return &BrowseEventsUseCase{
		eventAPI: eventAPI,
		cache:    cache,
		logger:   logger,
	}
}

// Execute returns the freshest listing available.
func (uc *BrowseEventsUseCase) Execute(ctx context.Context, input BrowseEventsInput) (*BrowseEventsOutput, error) {
	events, err := uc.eventAPI.List(ctx, adapter.EventFilter{City: input.City})
	if err != nil {
		if !errors.Is(err, domainerror.ErrUnavailable) {
			return nil, err
		}
		cached, cacheErr := uc.cache.ListUpcoming(ctx)
		if cacheErr != nil {
			return nil, err
		}
		uc.logger.Info("backend unreachable, serving cached events", "count", len(cached))
		return &BrowseEventsOutput{Events: cached, FromCache: true}, nil
	}

	if err := uc.cache.ReplaceUpcoming(ctx, events); err != nil {
		uc.logger.Warn("failed to cache events", "error", err)
	}

	return &BrowseEventsOutput{Events: events}, nil
}
