// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cucumber/godog"

	"github.com/meetcute/client/internal/application/usecase/auth"
	"github.com/meetcute/client/internal/application/usecase/event"
	"github.com/meetcute/client/internal/application/usecase/joinrequest"
	"github.com/meetcute/client/internal/domain/entity"
	"github.com/meetcute/client/internal/domain/policy"
	"github.com/meetcute/client/internal/integration/adapters"
	"github.com/meetcute/client/internal/integration/api"
	"github.com/meetcute/client/internal/integration/storage"
	"github.com/meetcute/client/test/integration/mock"
)

// TestContext holds the per-scenario state: the scripted backend, the real
// on-device stores, the wired use cases and the outcome of the last action.
type TestContext struct {
	backend *mock.Backend
	workDir string

	tokenStore *storage.FileTokenStore
	db         *storage.DB

	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
	logoutUseCase   *auth.LogoutUserUseCase
	refreshUseCase  *auth.RefreshSessionUseCase
	browseUseCase   *event.BrowseEventsUseCase
	joinUseCase     *joinrequest.RequestToJoinUseCase

	lastErr        error
	lastUser       *entity.User
	lastRefresh    *auth.RefreshSessionOutput
	lastBrowse     *event.BrowseEventsOutput
	lastJoin       *joinrequest.RequestToJoinOutput
	lastEvaluation policy.Evaluation

	// eventIDs maps the titles used in feature files to the generated ids
	// the scripted backend served them under.
	eventIDs map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// Use cases log through slog; keep suite output readable.
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{eventIDs: map[string]string{}}

		workDir, err := os.MkdirTemp("", "meetcute-integration-*")
		if err != nil {
			return ctx, err
		}
		tc.workDir = workDir

		tc.backend = mock.NewBackend()
		tc.backend.Start()

		tc.tokenStore, err = storage.NewFileTokenStore(filepath.Join(workDir, "tokens.vault"), "integration-device-secret")
		if err != nil {
			return ctx, err
		}

		tc.db, err = storage.Open(filepath.Join(workDir, "cache.db"))
		if err != nil {
			return ctx, err
		}

		client := api.NewClient(api.Options{
			BaseURL:   tc.backend.URL(),
			UserAgent: "meetcute-integration-test",
			Logger:    slog.Default(),
			Tokens:    tc.tokenStore,
		})

		authAPI := api.NewAuthAPI(client)
		eventAPI := api.NewEventAPI(client)
		joinRequestAPI := api.NewJoinRequestAPI(client)

		eventCache := storage.NewEventCacheRepository(tc.db.DB())

		tc.registerUseCase = auth.NewRegisterUserUseCase(authAPI, tc.tokenStore)
		tc.loginUseCase = auth.NewLoginUserUseCase(authAPI, tc.tokenStore)
		tc.logoutUseCase = auth.NewLogoutUserUseCase(authAPI, tc.tokenStore, slog.Default())
		tc.refreshUseCase = auth.NewRefreshSessionUseCase(authAPI, tc.tokenStore, adapters.NewTokenInspector(), 2*time.Minute)
		tc.browseUseCase = event.NewBrowseEventsUseCase(eventAPI, eventCache, slog.Default())
		tc.joinUseCase = joinrequest.NewRequestToJoinUseCase(eventAPI, joinRequestAPI)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			tc.backend.Close()
			if tc.db != nil {
				_ = tc.db.Close()
			}
			if tc.workDir != "" {
				_ = os.RemoveAll(tc.workDir)
			}
		}
		return ctx, nil
	})

	registerPolicySteps(ctx)
	registerAuthSteps(ctx)
	registerEventSteps(ctx)
	registerJoinRequestSteps(ctx)
	registerBackendSteps(ctx)
}
