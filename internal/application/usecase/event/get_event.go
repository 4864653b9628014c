package event

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/domain/entity"
)

// GetEventOutput carries one event.
type GetEventOutput struct {
	Event *entity.DateEvent
}

// GetEventUseCase fetches a single event's details.
type GetEventUseCase struct {
	eventAPI adapter.EventAPI
}

// NewGetEventUseCase creates a new GetEventUseCase instance.
func NewGetEventUseCase(eventAPI adapter.EventAPI) *GetEventUseCase {
	return &GetEventUseCase{eventAPI: eventAPI}
}

// Execute fetches the event with the given id.
func (uc *GetEventUseCase) Execute(ctx context.Context, id uuid.UUID) (*GetEventOutput, error) {
	event, err := uc.eventAPI.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GetEventOutput{Event: event}, nil
}
