package steps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/meetcute/client/internal/application/usecase/joinrequest"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// registerJoinRequestSteps registers steps around asking to join an event.
func registerJoinRequestSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the backend serves the event "([^"]*)" with (\d+) of (\d+) seats taken$`, theBackendServesTheEventWithSeats)
	ctx.Step(`^the backend will accept a join request for "([^"]*)"$`, theBackendWillAcceptAJoinRequestFor)
	ctx.Step(`^I request to join "([^"]*)" with message "([^"]*)"$`, iRequestToJoinWithMessage)
	ctx.Step(`^the join request should be pending$`, theJoinRequestShouldBePending)
	ctx.Step(`^the join request should be blocked because the event is not joinable$`, theJoinRequestShouldBeBlocked)
	ctx.Step(`^no join request should reach the backend$`, noJoinRequestShouldReachTheBackend)
}

func theBackendServesTheEventWithSeats(ctx context.Context, title string, attendees, capacity int) error {
	tc := GetTestContext(ctx)

	id := uuid.NewString()
	tc.eventIDs[title] = id
	tc.backend.Script(http.MethodGet, "/v1/events/"+id, http.StatusOK, eventBody(id, title, "Lisbon", attendees, capacity))
	return nil
}

func theBackendWillAcceptAJoinRequestFor(ctx context.Context, title string) error {
	tc := GetTestContext(ctx)

	eventID, ok := tc.eventIDs[title]
	if !ok {
		return fmt.Errorf("no scripted event named %q", title)
	}

	tc.backend.Script(http.MethodPost, "/v1/events/"+eventID+"/join-requests", http.StatusCreated, map[string]any{
		"id":             uuid.NewString(),
		"event_id":       eventID,
		"requester_id":   uuid.NewString(),
		"requester_name": "Ana",
		"message":        "Love that cafe!",
		"status":         "pending",
		"created_at":     time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

func iRequestToJoinWithMessage(ctx context.Context, title, message string) error {
	tc := GetTestContext(ctx)

	eventID, ok := tc.eventIDs[title]
	if !ok {
		return fmt.Errorf("no scripted event named %q", title)
	}
	id, err := uuid.Parse(eventID)
	if err != nil {
		return err
	}

	output, execErr := tc.joinUseCase.Execute(ctx, joinrequest.RequestToJoinInput{
		EventID: id,
		Message: message,
	})
	tc.lastErr = execErr
	tc.lastJoin = output
	return nil
}

func theJoinRequestShouldBePending(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastErr != nil {
		return fmt.Errorf("expected the join request to be created, got %v", tc.lastErr)
	}
	if tc.lastJoin == nil || !tc.lastJoin.Request.IsPending() {
		return fmt.Errorf("expected a pending join request")
	}
	return nil
}

func theJoinRequestShouldBeBlocked(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if !errors.Is(tc.lastErr, domainerror.ErrEventNotJoinable) {
		return fmt.Errorf("expected the not-joinable error, got %v", tc.lastErr)
	}
	return nil
}

func noJoinRequestShouldReachTheBackend(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if count := tc.backend.RequestCount(http.MethodPost, "/v1/events/*/join-requests"); count != 0 {
		return fmt.Errorf("expected no join request on the backend, got %d", count)
	}
	return nil
}
