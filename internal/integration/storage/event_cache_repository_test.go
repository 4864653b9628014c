package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("unexpected error opening cache database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func testEvent(title string, startsAt time.Time) entity.DateEvent {
	return entity.DateEvent{
		ID:          uuid.New(),
		HostID:      uuid.New(),
		HostName:    "Alex",
		Title:       title,
		Description: "Coffee and a walk along the river",
		Venue: entity.Venue{
			Name:      "Riverside Cafe",
			Address:   "12 Quay Street",
			Latitude:  51.5074,
			Longitude: -0.1278,
		},
		StartsAt:      startsAt,
		Capacity:      2,
		EstimatedCost: decimal.RequireFromString("15.50"),
		AttendeeCount: 1,
		Status:        entity.EventStatusOpen,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func TestEventCacheRepository_ReplaceAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventCacheRepository(db.DB())
	ctx := context.Background()

	base := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	later := testEvent("Sunset picnic", base.Add(48*time.Hour))
	sooner := testEvent("Coffee date", base)

	// Insert out of order; the listing must come back soonest first.
	if err := repo.ReplaceUpcoming(ctx, []entity.DateEvent{later, sooner}); err != nil {
		t.Fatalf("unexpected error caching events: %v", err)
	}

	events, err := repo.ListUpcoming(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing cached events: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 cached events, got %d", len(events))
	}
	if events[0].Title != sooner.Title {
		t.Errorf("expected soonest event first, got %q", events[0].Title)
	}
	if events[0].ID != sooner.ID {
		t.Errorf("expected event ID %s, got %s", sooner.ID, events[0].ID)
	}
	if !events[0].EstimatedCost.Equal(sooner.EstimatedCost) {
		t.Errorf("expected estimated cost %s, got %s", sooner.EstimatedCost, events[0].EstimatedCost)
	}
	if events[0].Venue != sooner.Venue {
		t.Errorf("expected venue %+v, got %+v", sooner.Venue, events[0].Venue)
	}
	if events[0].Status != entity.EventStatusOpen {
		t.Errorf("expected status %q, got %q", entity.EventStatusOpen, events[0].Status)
	}
}

func TestEventCacheRepository_ReplaceDiscardsPrevious(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventCacheRepository(db.DB())
	ctx := context.Background()

	startsAt := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)

	if err := repo.ReplaceUpcoming(ctx, []entity.DateEvent{testEvent("Old listing", startsAt)}); err != nil {
		t.Fatalf("unexpected error caching events: %v", err)
	}

	fresh := testEvent("Fresh listing", startsAt)
	if err := repo.ReplaceUpcoming(ctx, []entity.DateEvent{fresh}); err != nil {
		t.Fatalf("unexpected error replacing cached events: %v", err)
	}

	events, err := repo.ListUpcoming(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing cached events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 cached event after replace, got %d", len(events))
	}
	if events[0].Title != "Fresh listing" {
		t.Errorf("expected the fresh listing, got %q", events[0].Title)
	}
}

func TestEventCacheRepository_ListEmptyCache(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventCacheRepository(db.DB())

	_, err := repo.ListUpcoming(context.Background())
	if !errors.Is(err, domainerror.ErrEventsNotCached) {
		t.Errorf("expected ErrEventsNotCached for an empty cache, got %v", err)
	}
}

func TestEventCacheRepository_ReplaceWithEmptyListing(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventCacheRepository(db.DB())
	ctx := context.Background()

	startsAt := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	if err := repo.ReplaceUpcoming(ctx, []entity.DateEvent{testEvent("Only event", startsAt)}); err != nil {
		t.Fatalf("unexpected error caching events: %v", err)
	}

	// The backend returning no upcoming events clears the cache.
	if err := repo.ReplaceUpcoming(ctx, nil); err != nil {
		t.Fatalf("unexpected error replacing with empty listing: %v", err)
	}

	_, err := repo.ListUpcoming(ctx)
	if !errors.Is(err, domainerror.ErrEventsNotCached) {
		t.Errorf("expected ErrEventsNotCached after clearing replace, got %v", err)
	}
}
