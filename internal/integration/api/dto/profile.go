package dto

import (
	"time"

	"github.com/meetcute/client/internal/domain/entity"
)

// ProfileResponse is returned by GET /v1/profile and PATCH /v1/profile.
type ProfileResponse struct {
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	BirthDate   time.Time `json:"birth_date"`
	Interests   []string  `json:"interests"`
	City        string    `json:"city"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateProfileRequest is the body for PATCH /v1/profile.
type UpdateProfileRequest struct {
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	BirthDate   time.Time `json:"birth_date"`
	Interests   []string  `json:"interests"`
	City        string    `json:"city"`
}

// ToProfile converts the wire shape to the domain entity.
func (r ProfileResponse) ToProfile() entity.Profile {
	return entity.Profile{
		DisplayName: r.DisplayName,
		Bio:         r.Bio,
		BirthDate:   r.BirthDate,
		Interests:   r.Interests,
		City:        r.City,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromProfile builds the update body from the domain entity.
func FromProfile(profile entity.Profile) UpdateProfileRequest {
	return UpdateProfileRequest{
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		BirthDate:   profile.BirthDate,
		Interests:   profile.Interests,
		City:        profile.City,
	}
}
