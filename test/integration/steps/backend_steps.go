package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// registerBackendSteps registers steps controlling and asserting on the
// scripted backend itself.
func registerBackendSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the backend is unreachable$`, theBackendIsUnreachable)
	ctx.Step(`^no request should reach the backend$`, noRequestShouldReachTheBackend)
	ctx.Step(`^every request should carry a request id$`, everyRequestShouldCarryARequestID)
}

// theBackendIsUnreachable stops the mock server so requests fail at the
// transport level, the same as airplane mode.
func theBackendIsUnreachable(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.backend.Close()
	return nil
}

func noRequestShouldReachTheBackend(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if total := tc.backend.TotalRequests(); total != 0 {
		return fmt.Errorf("expected no request on the backend, got %d", total)
	}
	return nil
}

func everyRequestShouldCarryARequestID(ctx context.Context) error {
	tc := GetTestContext(ctx)
	for _, request := range tc.backend.AllReceived() {
		if request.Headers.Get("X-Request-ID") == "" {
			return fmt.Errorf("request to %s is missing X-Request-ID", request.Path)
		}
	}
	return nil
}
