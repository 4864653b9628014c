package api

import (
	"context"
	"net/http"

	"github.com/meetcute/client/internal/domain/entity"
	"github.com/meetcute/client/internal/integration/api/dto"
)

// ProfileAPI implements adapter.ProfileAPI against the remote API.
type ProfileAPI struct {
	client *Client
}

// NewProfileAPI creates a new profile API wrapper.
func NewProfileAPI(client *Client) *ProfileAPI {
	return &ProfileAPI{client: client}
}

// Get fetches the signed-in user's profile.
func (a *ProfileAPI) Get(ctx context.Context) (*entity.Profile, error) {
	var resp dto.ProfileResponse
	if err := a.client.do(ctx, http.MethodGet, "/v1/profile", nil, &resp, true); err != nil {
		return nil, err
	}

	profile := resp.ToProfile()
	return &profile, nil
}

// Update replaces the signed-in user's profile attributes.
func (a *ProfileAPI) Update(ctx context.Context, profile entity.Profile) (*entity.Profile, error) {
	req := dto.FromProfile(profile)

	var resp dto.ProfileResponse
	if err := a.client.do(ctx, http.MethodPatch, "/v1/profile", req, &resp, true); err != nil {
		return nil, err
	}

	updated := resp.ToProfile()
	return &updated, nil
}
