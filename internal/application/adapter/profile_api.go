package adapter

import (
	"context"

	"github.com/meetcute/client/internal/domain/entity"
)

// ProfileAPI wraps the profile endpoints of the remote API.
type ProfileAPI interface {
	// Get fetches the signed-in user's profile.
	Get(ctx context.Context) (*entity.Profile, error)

	// Update replaces the signed-in user's profile attributes.
	Update(ctx context.Context, profile entity.Profile) (*entity.Profile, error)
}
