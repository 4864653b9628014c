package model

import (
	"strings"
	"time"

	"github.com/meetcute/client/internal/domain/entity"
)

// interestSeparator joins the interests list into a single column. Newlines
// cannot appear inside an interest, so the join is unambiguous.
const interestSeparator = "\n"

// CachedProfileModel is the single-row cache of the user's own profile.
type CachedProfileModel struct {
	ID          uint   `gorm:"primaryKey"`
	DisplayName string `gorm:"type:text"`
	Bio         string `gorm:"type:text"`
	BirthDate   time.Time
	Interests   string `gorm:"type:text"`
	City        string `gorm:"type:text"`
	UpdatedAt   time.Time
	CachedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the cached profile model.
func (CachedProfileModel) TableName() string {
	return "cached_profile"
}

// ToEntity converts the cache row to the domain entity.
func (m *CachedProfileModel) ToEntity() entity.Profile {
	var interests []string
	if m.Interests != "" {
		interests = strings.Split(m.Interests, interestSeparator)
	}

	return entity.Profile{
		DisplayName: m.DisplayName,
		Bio:         m.Bio,
		BirthDate:   m.BirthDate,
		Interests:   interests,
		City:        m.City,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromProfileEntity builds the cache row from the domain entity.
func FromProfileEntity(profile entity.Profile, cachedAt time.Time) CachedProfileModel {
	return CachedProfileModel{
		ID:          1,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		BirthDate:   profile.BirthDate,
		Interests:   strings.Join(profile.Interests, interestSeparator),
		City:        profile.City,
		UpdatedAt:   profile.UpdatedAt,
		CachedAt:    cachedAt,
	}
}
