package joinrequest

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/domain/entity"
)

// ListJoinRequestsOutput carries the requests for one hosted event.
type ListJoinRequestsOutput struct {
	Requests []entity.JoinRequest
	Pending  int
}

// ListJoinRequestsUseCase lists the join requests for an event the signed-in
// user hosts.
type ListJoinRequestsUseCase struct {
	joinRequestAPI adapter.JoinRequestAPI
}

// NewListJoinRequestsUseCase creates a new ListJoinRequestsUseCase instance.
func NewListJoinRequestsUseCase(joinRequestAPI adapter.JoinRequestAPI) *ListJoinRequestsUseCase {
	return &ListJoinRequestsUseCase{joinRequestAPI: joinRequestAPI}
}

// Execute fetches the requests for the given event.
func (uc *ListJoinRequestsUseCase) Execute(ctx context.Context, eventID uuid.UUID) (*ListJoinRequestsOutput, error) {
	requests, err := uc.joinRequestAPI.ListForEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	pending := 0
	for i := range requests {
		if requests[i].IsPending() {
			pending++
		}
	}

	return &ListJoinRequestsOutput{Requests: requests, Pending: pending}, nil
}
