package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meetcute/client/internal/domain/entity"
)

// VenueDTO is the venue shape embedded in event payloads.
type VenueDTO struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventResponse is the event shape returned by the events endpoints.
// Monetary amounts travel as decimal strings.
type EventResponse struct {
	ID            string    `json:"id"`
	HostID        string    `json:"host_id"`
	HostName      string    `json:"host_name"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Venue         VenueDTO  `json:"venue"`
	StartsAt      time.Time `json:"starts_at"`
	Capacity      int       `json:"capacity"`
	EstimatedCost string    `json:"estimated_cost"`
	AttendeeCount int       `json:"attendee_count"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// EventListResponse is returned by GET /v1/events.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// CreateEventRequest is the body for POST /v1/events.
type CreateEventRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Venue         VenueDTO `json:"venue"`
	StartsAt      string   `json:"starts_at"`
	Capacity      int      `json:"capacity"`
	EstimatedCost string   `json:"estimated_cost"`
}

// ToEvent converts the wire shape to the domain entity.
func (r EventResponse) ToEvent() (entity.DateEvent, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return entity.DateEvent{}, fmt.Errorf("parse event id: %w", err)
	}
	hostID, err := uuid.Parse(r.HostID)
	if err != nil {
		return entity.DateEvent{}, fmt.Errorf("parse host id: %w", err)
	}
	cost, err := decimal.NewFromString(r.EstimatedCost)
	if err != nil {
		return entity.DateEvent{}, fmt.Errorf("parse estimated cost: %w", err)
	}

	return entity.DateEvent{
		ID:       id,
		HostID:   hostID,
		HostName: r.HostName,
		Title:    r.Title,
		Description: r.Description,
		Venue: entity.Venue{
			Name:      r.Venue.Name,
			Address:   r.Venue.Address,
			Latitude:  r.Venue.Latitude,
			Longitude: r.Venue.Longitude,
		},
		StartsAt:      r.StartsAt,
		Capacity:      r.Capacity,
		EstimatedCost: cost,
		AttendeeCount: r.AttendeeCount,
		Status:        entity.EventStatus(r.Status),
		CreatedAt:     r.CreatedAt,
	}, nil
}

// FromEvent builds the creation body from the domain entity.
func FromEvent(event entity.DateEvent) CreateEventRequest {
	return CreateEventRequest{
		Title:       event.Title,
		Description: event.Description,
		Venue: VenueDTO{
			Name:      event.Venue.Name,
			Address:   event.Venue.Address,
			Latitude:  event.Venue.Latitude,
			Longitude: event.Venue.Longitude,
		},
		StartsAt:      event.StartsAt.UTC().Format(time.RFC3339),
		Capacity:      event.Capacity,
		EstimatedCost: event.EstimatedCost.String(),
	}
}
