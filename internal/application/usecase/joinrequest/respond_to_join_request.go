package joinrequest

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/domain/entity"
)

// RespondToJoinRequestInput represents the host's answer to a request.
type RespondToJoinRequestInput struct {
	RequestID uuid.UUID
	Accept    bool
}

// RespondToJoinRequestOutput carries the answered request.
type RespondToJoinRequestOutput struct {
	Request *entity.JoinRequest
}

// RespondToJoinRequestUseCase accepts or declines a pending join request.
// Only pending requests may be answered; the backend rejects anything else
// with ErrRequestAlreadyAnswered.
type RespondToJoinRequestUseCase struct {
	joinRequestAPI adapter.JoinRequestAPI
}

// NewRespondToJoinRequestUseCase creates a new RespondToJoinRequestUseCase instance.
func NewRespondToJoinRequestUseCase(joinRequestAPI adapter.JoinRequestAPI) *RespondToJoinRequestUseCase {
	return &RespondToJoinRequestUseCase{joinRequestAPI: joinRequestAPI}
}

// Execute sends the host's answer.
func (uc *RespondToJoinRequestUseCase) Execute(ctx context.Context, input RespondToJoinRequestInput) (*RespondToJoinRequestOutput, error) {
	request, err := uc.joinRequestAPI.Respond(ctx, input.RequestID, input.Accept)
	if err != nil {
		return nil, err
	}
	return &RespondToJoinRequestOutput{Request: request}, nil
}
