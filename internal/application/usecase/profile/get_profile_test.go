package profile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// fakeProfileAPI plays back a canned profile.
type fakeProfileAPI struct {
	profile *entity.Profile
	getErr  error

	updated *entity.Profile
}

func (f *fakeProfileAPI) Get(ctx context.Context) (*entity.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profile, nil
}

func (f *fakeProfileAPI) Update(ctx context.Context, profile entity.Profile) (*entity.Profile, error) {
	f.updated = &profile
	return &profile, nil
}

// fakeProfileCache is an in-memory adapter.ProfileCache.
type fakeProfileCache struct {
	profile *entity.Profile
}

func (f *fakeProfileCache) Save(ctx context.Context, profile entity.Profile) error {
	f.profile = &profile
	return nil
}

func (f *fakeProfileCache) Get(ctx context.Context) (*entity.Profile, error) {
	if f.profile == nil {
		return nil, domainerror.ErrProfileNotCached
	}
	return f.profile, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetProfileUseCase_FreshProfileUpdatesCache(t *testing.T) {
	fresh := &entity.Profile{DisplayName: "Jordan", City: "Lisbon", UpdatedAt: time.Now().UTC()}
	api := &fakeProfileAPI{profile: fresh}
	cache := &fakeProfileCache{}

	useCase := NewGetProfileUseCase(api, cache, discardLogger())

	output, err := useCase.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.FromCache {
		t.Error("expected a fresh profile, not a cached one")
	}
	if output.Profile.DisplayName != "Jordan" {
		t.Errorf("expected the fetched profile, got %q", output.Profile.DisplayName)
	}
	if cache.profile == nil || cache.profile.City != "Lisbon" {
		t.Error("expected the fresh profile to be cached")
	}
}

func TestGetProfileUseCase_OfflineFallsBackToCache(t *testing.T) {
	api := &fakeProfileAPI{getErr: domainerror.ErrUnavailable}
	cache := &fakeProfileCache{profile: &entity.Profile{DisplayName: "Cached Jordan"}}

	useCase := NewGetProfileUseCase(api, cache, discardLogger())

	output, err := useCase.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.FromCache {
		t.Error("expected the cached profile to be flagged as such")
	}
	if output.Profile.DisplayName != "Cached Jordan" {
		t.Errorf("expected the cached profile, got %q", output.Profile.DisplayName)
	}
}

func TestGetProfileUseCase_OfflineWithEmptyCache(t *testing.T) {
	api := &fakeProfileAPI{getErr: domainerror.ErrUnavailable}
	useCase := NewGetProfileUseCase(api, &fakeProfileCache{}, discardLogger())

	_, err := useCase.Execute(context.Background())
	if !errors.Is(err, domainerror.ErrUnavailable) {
		t.Errorf("expected the original unavailable error, got %v", err)
	}
}
