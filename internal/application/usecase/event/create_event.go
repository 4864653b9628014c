package event

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/application/form"
	"github.com/meetcute/client/internal/domain/entity"
)

// CreateEventInput represents the event creation form submission.
type CreateEventInput struct {
	Title         string
	Description   string
	VenueName     string
	VenueAddress  string
	Latitude      float64
	Longitude     float64
	StartsAt      time.Time
	Capacity      int
	EstimatedCost decimal.Decimal
}

// CreateEventOutput carries the event as published by the backend.
type CreateEventOutput struct {
	Event *entity.DateEvent
}

// CreateEventUseCase validates and publishes a new date event.
type CreateEventUseCase struct {
	eventAPI adapter.EventAPI
}

// NewCreateEventUseCase creates a new CreateEventUseCase instance.
func NewCreateEventUseCase(eventAPI adapter.EventAPI) *CreateEventUseCase {
	return &CreateEventUseCase{eventAPI: eventAPI}
}

// Execute validates the form and publishes the event. Nothing reaches the
// network while the form reports problems.
func (uc *CreateEventUseCase) Execute(ctx context.Context, input CreateEventInput) (*CreateEventOutput, error) {
	eventForm := form.EventForm{
		Title:         input.Title,
		Description:   input.Description,
		VenueName:     input.VenueName,
		VenueAddress:  input.VenueAddress,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		StartsAt:      input.StartsAt,
		Capacity:      input.Capacity,
		EstimatedCost: input.EstimatedCost,
	}
	if err := eventForm.Validate(time.Now().UTC()); err != nil {
		return nil, err
	}

	created, err := uc.eventAPI.Create(ctx, eventForm.ToEntity())
	if err != nil {
		return nil, err
	}

	return &CreateEventOutput{Event: created}, nil
}
