// Package model defines the persistence models for the on-device cache.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meetcute/client/internal/domain/entity"
)

// CachedEventModel is the cache row for one date event.
type CachedEventModel struct {
	ID            string    `gorm:"primaryKey;type:text"`
	HostID        string    `gorm:"type:text;not null"`
	HostName      string    `gorm:"type:text"`
	Title         string    `gorm:"type:text;not null"`
	Description   string    `gorm:"type:text"`
	VenueName     string    `gorm:"type:text"`
	VenueAddress  string    `gorm:"type:text"`
	Latitude      float64
	Longitude     float64
	StartsAt      time.Time `gorm:"index"`
	Capacity      int
	EstimatedCost string `gorm:"type:text"`
	AttendeeCount int
	Status        string    `gorm:"type:text"`
	CreatedAt     time.Time
	CachedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the cached event model.
func (CachedEventModel) TableName() string {
	return "cached_events"
}

// ToEntity converts the cache row to the domain entity. Rows are written
// from valid entities, so parse failures degrade to zero values instead of
// failing a whole listing.
func (m *CachedEventModel) ToEntity() entity.DateEvent {
	id, _ := uuid.Parse(m.ID)
	hostID, _ := uuid.Parse(m.HostID)
	cost, _ := decimal.NewFromString(m.EstimatedCost)

	return entity.DateEvent{
		ID:          id,
		HostID:      hostID,
		HostName:    m.HostName,
		Title:       m.Title,
		Description: m.Description,
		Venue: entity.Venue{
			Name:      m.VenueName,
			Address:   m.VenueAddress,
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
		},
		StartsAt:      m.StartsAt,
		Capacity:      m.Capacity,
		EstimatedCost: cost,
		AttendeeCount: m.AttendeeCount,
		Status:        entity.EventStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

// FromEventEntity builds a cache row from the domain entity.
func FromEventEntity(event entity.DateEvent, cachedAt time.Time) CachedEventModel {
	return CachedEventModel{
		ID:            event.ID.String(),
		HostID:        event.HostID.String(),
		HostName:      event.HostName,
		Title:         event.Title,
		Description:   event.Description,
		VenueName:     event.Venue.Name,
		VenueAddress:  event.Venue.Address,
		Latitude:      event.Venue.Latitude,
		Longitude:     event.Venue.Longitude,
		StartsAt:      event.StartsAt,
		Capacity:      event.Capacity,
		EstimatedCost: event.EstimatedCost.String(),
		AttendeeCount: event.AttendeeCount,
		Status:        string(event.Status),
		CreatedAt:     event.CreatedAt,
		CachedAt:      cachedAt,
	}
}
