// Package joinrequest contains join request use cases.
package joinrequest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// maxMessageLength bounds the optional note sent with a join request.
const maxMessageLength = 280

// RequestToJoinInput represents the join request form submission.
type RequestToJoinInput struct {
	EventID uuid.UUID
	Message string
}

// RequestToJoinOutput carries the created request.
type RequestToJoinOutput struct {
	Request *entity.JoinRequest
}

// RequestToJoinUseCase asks to join another user's event.
type RequestToJoinUseCase struct {
	eventAPI       adapter.EventAPI
	joinRequestAPI adapter.JoinRequestAPI
}

// NewRequestToJoinUseCase creates a new RequestToJoinUseCase instance.
func NewRequestToJoinUseCase(eventAPI adapter.EventAPI, joinRequestAPI adapter.JoinRequestAPI) *RequestToJoinUseCase {
	return &RequestToJoinUseCase{
		eventAPI:       eventAPI,
		joinRequestAPI: joinRequestAPI,
	}
}

// Execute checks the event is still joinable and sends the request. The
// backend remains the authority; the local check only saves a round trip for
// events the client already knows are closed.
func (uc *RequestToJoinUseCase) Execute(ctx context.Context, input RequestToJoinInput) (*RequestToJoinOutput, error) {
	if len(input.Message) > maxMessageLength {
		return nil, domainerror.ValidationErrors{{
			Field:   "Message",
			Message: "Message must be at most 280 characters",
		}}
	}

	event, err := uc.eventAPI.Get(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsJoinable(time.Now().UTC()) {
		return nil, domainerror.ErrEventNotJoinable
	}

	request, err := uc.joinRequestAPI.Create(ctx, input.EventID, input.Message)
	if err != nil {
		return nil, err
	}

	return &RequestToJoinOutput{Request: request}, nil
}
