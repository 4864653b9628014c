package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
	"github.com/meetcute/client/internal/integration/api/dto"
)

// JoinRequestAPI implements adapter.JoinRequestAPI against the remote API.
type JoinRequestAPI struct {
	client *Client
}

// NewJoinRequestAPI creates a new join request API wrapper.
func NewJoinRequestAPI(client *Client) *JoinRequestAPI {
	return &JoinRequestAPI{client: client}
}

// Create sends a request to join an event.
func (a *JoinRequestAPI) Create(ctx context.Context, eventID uuid.UUID, message string) (*entity.JoinRequest, error) {
	req := dto.CreateJoinRequestRequest{Message: message}
	path := "/v1/events/" + eventID.String() + "/join-requests"

	var resp dto.JoinRequestResponse
	if err := a.client.do(ctx, http.MethodPost, path, req, &resp, true); err != nil {
		return nil, err
	}

	return toJoinRequest(resp)
}

// ListForEvent fetches the requests for an event the user hosts.
func (a *JoinRequestAPI) ListForEvent(ctx context.Context, eventID uuid.UUID) ([]entity.JoinRequest, error) {
	path := "/v1/events/" + eventID.String() + "/join-requests"

	var resp dto.JoinRequestListResponse
	if err := a.client.do(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, err
	}

	requests := make([]entity.JoinRequest, 0, len(resp.Requests))
	for _, item := range resp.Requests {
		request, err := toJoinRequest(item)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *request)
	}

	return requests, nil
}

// Respond accepts or declines a pending request.
func (a *JoinRequestAPI) Respond(ctx context.Context, requestID uuid.UUID, accept bool) (*entity.JoinRequest, error) {
	action := "decline"
	if accept {
		action = "accept"
	}
	req := dto.RespondToJoinRequestRequest{Action: action}
	path := "/v1/join-requests/" + requestID.String() + "/respond"

	var resp dto.JoinRequestResponse
	if err := a.client.do(ctx, http.MethodPost, path, req, &resp, true); err != nil {
		return nil, err
	}

	return toJoinRequest(resp)
}

func toJoinRequest(resp dto.JoinRequestResponse) (*entity.JoinRequest, error) {
	request, err := resp.ToJoinRequest()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrUnexpectedResponse, err)
	}
	return &request, nil
}
