package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

func TestProfileCacheRepository_SaveAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileCacheRepository(db.DB())
	ctx := context.Background()

	profile := entity.Profile{
		DisplayName: "Jordan",
		Bio:         "Weekend hiker, weekday barista.",
		BirthDate:   time.Date(1994, time.March, 12, 0, 0, 0, 0, time.UTC),
		Interests:   []string{"hiking", "coffee", "live music"},
		City:        "Lisbon",
		UpdatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	if err := repo.Save(ctx, profile); err != nil {
		t.Fatalf("unexpected error caching profile: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error loading cached profile: %v", err)
	}

	if got.DisplayName != profile.DisplayName {
		t.Errorf("expected display name %q, got %q", profile.DisplayName, got.DisplayName)
	}
	if !got.BirthDate.Equal(profile.BirthDate) {
		t.Errorf("expected birth date %v, got %v", profile.BirthDate, got.BirthDate)
	}
	if !reflect.DeepEqual(got.Interests, profile.Interests) {
		t.Errorf("expected interests %v, got %v", profile.Interests, got.Interests)
	}
	if got.City != profile.City {
		t.Errorf("expected city %q, got %q", profile.City, got.City)
	}
}

func TestProfileCacheRepository_SaveOverwrites(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileCacheRepository(db.DB())
	ctx := context.Background()

	first := entity.Profile{DisplayName: "Jordan", City: "Lisbon"}
	second := entity.Profile{DisplayName: "Jordan", City: "Porto"}

	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("unexpected error caching profile: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("unexpected error re-caching profile: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error loading cached profile: %v", err)
	}
	if got.City != "Porto" {
		t.Errorf("expected the newer profile, got city %q", got.City)
	}
}

func TestProfileCacheRepository_GetEmptyCache(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileCacheRepository(db.DB())

	_, err := repo.Get(context.Background())
	if !errors.Is(err, domainerror.ErrProfileNotCached) {
		t.Errorf("expected ErrProfileNotCached for an empty cache, got %v", err)
	}
}

func TestProfileCacheRepository_EmptyInterests(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileCacheRepository(db.DB())
	ctx := context.Background()

	if err := repo.Save(ctx, entity.Profile{DisplayName: "Jordan"}); err != nil {
		t.Fatalf("unexpected error caching profile: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error loading cached profile: %v", err)
	}
	if len(got.Interests) != 0 {
		t.Errorf("expected no interests, got %v", got.Interests)
	}
}
