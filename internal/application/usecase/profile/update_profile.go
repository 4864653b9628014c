package profile

import (
	"context"
	"log/slog"
	"time"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/application/form"
	"github.com/meetcute/client/internal/domain/entity"
)

// UpdateProfileInput represents the profile edit form submission.
type UpdateProfileInput struct {
	DisplayName string
	Bio         string
	BirthDate   time.Time
	Interests   []string
	City        string
}

// UpdateProfileOutput carries the profile as stored by the backend.
type UpdateProfileOutput struct {
	Profile *entity.Profile
}

// UpdateProfileUseCase validates and submits profile edits.
type UpdateProfileUseCase struct {
	profileAPI adapter.ProfileAPI
	cache      adapter.ProfileCache
	logger     *slog.Logger
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileAPI adapter.ProfileAPI, cache adapter.ProfileCache, logger *slog.Logger) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileAPI: profileAPI,
		cache:      cache,
		logger:     logger,
	}
}

// Execute validates the form, submits it, and refreshes the cached copy.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	profileForm := form.ProfileForm{
		DisplayName: input.DisplayName,
		Bio:         input.Bio,
		BirthDate:   input.BirthDate,
		Interests:   input.Interests,
		City:        input.City,
	}
	if err := profileForm.Validate(time.Now().UTC()); err != nil {
		return nil, err
	}

	updated, err := uc.profileAPI.Update(ctx, profileForm.ToEntity())
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Save(ctx, *updated); err != nil {
		uc.logger.Warn("failed to cache profile", "error", err)
	}

	return &UpdateProfileOutput{Profile: updated}, nil
}
