package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventStatus represents the lifecycle state of a date event.
type EventStatus string

const (
	EventStatusOpen      EventStatus = "open"
	EventStatusFull      EventStatus = "full"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusPast      EventStatus = "past"
)

// Venue is the place a date event happens at.
type Venue struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// DateEvent represents a planned date event hosted by a user at a venue.
type DateEvent struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	HostName      string
	Title         string
	Description   string
	Venue         Venue
	StartsAt      time.Time
	Capacity      int
	EstimatedCost decimal.Decimal
	AttendeeCount int
	Status        EventStatus
	CreatedAt     time.Time
}

// IsJoinable reports whether a join request can still be sent for the event.
func (e *DateEvent) IsJoinable(now time.Time) bool {
	return e.Status == EventStatusOpen &&
		e.AttendeeCount < e.Capacity &&
		e.StartsAt.After(now)
}
