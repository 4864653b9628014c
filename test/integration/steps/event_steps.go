package steps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/meetcute/client/internal/application/usecase/event"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// registerEventSteps registers event browsing steps, including the offline
// cache fallback.
func registerEventSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the backend will list the event "([^"]*)" in "([^"]*)"$`, theBackendWillListTheEventIn)
	ctx.Step(`^I browse events in "([^"]*)"$`, iBrowseEventsIn)
	ctx.Step(`^I should see the event "([^"]*)"$`, iShouldSeeTheEvent)
	ctx.Step(`^the listing should be fresh$`, theListingShouldBeFresh)
	ctx.Step(`^the listing should come from the cache$`, theListingShouldComeFromTheCache)
	ctx.Step(`^browsing should fail because the backend is unreachable$`, browsingShouldFailUnreachable)
}

// eventBody builds an open upcoming event as the backend would serve it.
func eventBody(id, title, city string, attendees, capacity int) map[string]any {
	return map[string]any{
		"id":          id,
		"host_id":     uuid.NewString(),
		"host_name":   "Sam",
		"title":       title,
		"description": "A relaxed first date",
		"venue": map[string]any{
			"name":      "Riverside Cafe",
			"address":   "12 Quay Street, " + city,
			"latitude":  38.7223,
			"longitude": -9.1393,
		},
		"starts_at":      time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339),
		"capacity":       capacity,
		"estimated_cost": "15.50",
		"attendee_count": attendees,
		"status":         "open",
		"created_at":     time.Now().UTC().Format(time.RFC3339),
	}
}

func theBackendWillListTheEventIn(ctx context.Context, title, city string) error {
	tc := GetTestContext(ctx)

	id := uuid.NewString()
	tc.eventIDs[title] = id
	tc.backend.Script(http.MethodGet, "/v1/events", http.StatusOK, map[string]any{
		"events": []any{eventBody(id, title, city, 1, 2)},
	})
	return nil
}

func iBrowseEventsIn(ctx context.Context, city string) error {
	tc := GetTestContext(ctx)
	output, err := tc.browseUseCase.Execute(ctx, event.BrowseEventsInput{City: city})
	tc.lastErr = err
	tc.lastBrowse = output
	return nil
}

func iShouldSeeTheEvent(ctx context.Context, title string) error {
	tc := GetTestContext(ctx)
	if tc.lastErr != nil {
		return fmt.Errorf("expected a listing, got %v", tc.lastErr)
	}
	for _, item := range tc.lastBrowse.Events {
		if item.Title == title {
			return nil
		}
	}
	return fmt.Errorf("expected the listing to contain %q, got %d other events", title, len(tc.lastBrowse.Events))
}

func theListingShouldBeFresh(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastBrowse == nil {
		return fmt.Errorf("expected a listing, got %v", tc.lastErr)
	}
	if tc.lastBrowse.FromCache {
		return fmt.Errorf("expected a fresh listing, got a cached one")
	}
	return nil
}

func theListingShouldComeFromTheCache(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastBrowse == nil {
		return fmt.Errorf("expected a listing, got %v", tc.lastErr)
	}
	if !tc.lastBrowse.FromCache {
		return fmt.Errorf("expected the cached listing, got a fresh one")
	}
	return nil
}

func browsingShouldFailUnreachable(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if !errors.Is(tc.lastErr, domainerror.ErrUnavailable) {
		return fmt.Errorf("expected the unreachable error, got %v", tc.lastErr)
	}
	return nil
}
