package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
	"github.com/meetcute/client/internal/integration/api/dto"
)

// EventAPI implements adapter.EventAPI against the remote API.
type EventAPI struct {
	client *Client
}

// NewEventAPI creates a new event API wrapper.
func NewEventAPI(client *Client) *EventAPI {
	return &EventAPI{client: client}
}

// List fetches events matching the filter, soonest first.
func (a *EventAPI) List(ctx context.Context, filter adapter.EventFilter) ([]entity.DateEvent, error) {
	query := url.Values{}
	if filter.City != "" {
		query.Set("city", filter.City)
	}
	if !filter.From.IsZero() {
		query.Set("from", filter.From.UTC().Format(time.RFC3339))
	}

	path := "/v1/events"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp dto.EventListResponse
	if err := a.client.do(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, err
	}

	events := make([]entity.DateEvent, 0, len(resp.Events))
	for _, item := range resp.Events {
		event, err := item.ToEvent()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domainerror.ErrUnexpectedResponse, err)
		}
		events = append(events, event)
	}

	return events, nil
}

// Create publishes a new event hosted by the signed-in user.
func (a *EventAPI) Create(ctx context.Context, event entity.DateEvent) (*entity.DateEvent, error) {
	req := dto.FromEvent(event)

	var resp dto.EventResponse
	if err := a.client.do(ctx, http.MethodPost, "/v1/events", req, &resp, true); err != nil {
		return nil, err
	}

	created, err := resp.ToEvent()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrUnexpectedResponse, err)
	}

	return &created, nil
}

// Get fetches a single event.
func (a *EventAPI) Get(ctx context.Context, id uuid.UUID) (*entity.DateEvent, error) {
	var resp dto.EventResponse
	if err := a.client.do(ctx, http.MethodGet, "/v1/events/"+id.String(), nil, &resp, true); err != nil {
		return nil, err
	}

	event, err := resp.ToEvent()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrUnexpectedResponse, err)
	}

	return &event, nil
}
