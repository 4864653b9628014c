// Package profile contains profile-related use cases.
package profile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// GetProfileOutput carries the profile and where it came from.
type GetProfileOutput struct {
	Profile *entity.Profile
	// FromCache is true when the backend was unreachable and the cached
	// copy was returned instead.
	FromCache bool
}

// GetProfileUseCase fetches the signed-in user's profile, falling back to
// the on-device cache when offline.
type GetProfileUseCase struct {
	profileAPI adapter.ProfileAPI
	cache      adapter.ProfileCache
	logger     *slog.Logger
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileAPI adapter.ProfileAPI, cache adapter.ProfileCache, logger *slog.Logger) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileAPI: profileAPI,
		cache:      cache,
		logger:     logger,
	}
}

// Execute returns the freshest profile available.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*GetProfileOutput, error) {
	fetched, err := uc.profileAPI.Get(ctx)
	if err != nil {
		if !errors.Is(err, domainerror.ErrUnavailable) {
			return nil, err
		}
		cached, cacheErr := uc.cache.Get(ctx)
		if cacheErr != nil {
			return nil, err
		}
		uc.logger.Info("backend unreachable, serving cached profile")
		return &GetProfileOutput{Profile: cached, FromCache: true}, nil
	}

	if err := uc.cache.Save(ctx, *fetched); err != nil {
		uc.logger.Warn("failed to cache profile", "error", err)
	}

	return &GetProfileOutput{Profile: fetched}, nil
}
