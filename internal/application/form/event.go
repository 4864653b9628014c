package form

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// EventForm creates a new date event at a venue.
type EventForm struct {
	Title         string          `validate:"required,min=3,max=80"`
	Description   string          `validate:"max=1000"`
	VenueName     string          `validate:"required,max=120"`
	VenueAddress  string          `validate:"required,max=200"`
	Latitude      float64         `validate:"latitude"`
	Longitude     float64         `validate:"longitude"`
	StartsAt      time.Time       `validate:"required"`
	Capacity      int             `validate:"required,min=2,max=12"`
	EstimatedCost decimal.Decimal `validate:"-"`
}

var eventMessages = map[string]string{
	"Title.required":        "Title is required",
	"Title.min":             "Title must be at least 3 characters",
	"Title.max":             "Title must be at most 80 characters",
	"Description.max":       "Description must be at most 1000 characters",
	"VenueName.required":    "Venue name is required",
	"VenueName.max":         "Venue name must be at most 120 characters",
	"VenueAddress.required": "Venue address is required",
	"VenueAddress.max":      "Venue address must be at most 200 characters",
	"Latitude.latitude":     "Venue latitude is not valid",
	"Longitude.longitude":   "Venue longitude is not valid",
	"StartsAt.required":     "Start time is required",
	"Capacity.required":     "Capacity is required",
	"Capacity.min":          "An event needs room for at least 2 people",
	"Capacity.max":          "An event can host at most 12 people",
}

// Validate checks the form against the given current time (events must start
// in the future).
func (f *EventForm) Validate(now time.Time) error {
	var out domainerror.ValidationErrors

	if err := collect(validate.Struct(f), eventMessages, ""); err != nil {
		var fieldErrs domainerror.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		out = fieldErrs
	}

	if !f.StartsAt.IsZero() && !f.StartsAt.After(now) {
		out = append(out, domainerror.FieldError{
			Field:   "StartsAt",
			Message: "Event must start in the future",
		})
	}
	if f.EstimatedCost.IsNegative() {
		out = append(out, domainerror.FieldError{
			Field:   "EstimatedCost",
			Message: "Estimated cost cannot be negative",
		})
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// ToEntity builds the event entity submitted to the API.
func (f *EventForm) ToEntity() entity.DateEvent {
	return entity.DateEvent{
		Title:       f.Title,
		Description: f.Description,
		Venue: entity.Venue{
			Name:      f.VenueName,
			Address:   f.VenueAddress,
			Latitude:  f.Latitude,
			Longitude: f.Longitude,
		},
		StartsAt:      f.StartsAt,
		Capacity:      f.Capacity,
		EstimatedCost: f.EstimatedCost,
		Status:        entity.EventStatusOpen,
	}
}
