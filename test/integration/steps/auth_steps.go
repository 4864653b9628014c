package steps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/application/usecase/auth"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// registerAuthSteps registers signup, login and logout steps.
func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the backend will accept the signup for "([^"]*)"$`, theBackendWillAcceptTheSignupFor)
	ctx.Step(`^the backend will reject the signup because the email is taken$`, theBackendWillRejectTheSignupEmailTaken)
	ctx.Step(`^I sign up as "([^"]*)" with email "([^"]*)" and password "([^"]*)"$`, iSignUpAsWithEmailAndPassword)
	ctx.Step(`^the signup should succeed$`, theSignupShouldSucceed)
	ctx.Step(`^the signup should fail with password problems$`, theSignupShouldFailWithPasswordProblems)
	ctx.Step(`^the signup should fail because the email is taken$`, theSignupShouldFailEmailTaken)

	ctx.Step(`^the backend will accept the login for "([^"]*)"$`, theBackendWillAcceptTheLoginFor)
	ctx.Step(`^the backend will reject the credentials$`, theBackendWillRejectTheCredentials)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, iLogInAsWithPassword)
	ctx.Step(`^the login should succeed$`, theLoginShouldSucceed)
	ctx.Step(`^the login should fail with invalid credentials$`, theLoginShouldFailInvalidCredentials)

	ctx.Step(`^I am signed in$`, iAmSignedIn)
	ctx.Step(`^I am signed in with an access token expiring in (\d+) (minutes|seconds)$`, iAmSignedInWithExpiringToken)
	ctx.Step(`^the backend will renew the session$`, theBackendWillRenewTheSession)
	ctx.Step(`^I refresh the session$`, iRefreshTheSession)
	ctx.Step(`^the session should be renewed$`, theSessionShouldBeRenewed)
	ctx.Step(`^the session should be left untouched$`, theSessionShouldBeLeftUntouched)
	ctx.Step(`^I log out$`, iLogOut)

	ctx.Step(`^a session should be stored on the device$`, aSessionShouldBeStoredOnTheDevice)
	ctx.Step(`^no session should remain on the device$`, noSessionShouldRemainOnTheDevice)
}

// authResponseBody builds the session envelope the backend returns on
// register and login.
func authResponseBody(email, displayName string) map[string]any {
	return map[string]any{
		"access_token":  "access-" + uuid.NewString(),
		"refresh_token": "refresh-" + uuid.NewString(),
		"user": map[string]any{
			"id":           uuid.NewString(),
			"email":        email,
			"display_name": displayName,
			"created_at":   time.Now().UTC().Format(time.RFC3339),
		},
	}
}

func theBackendWillAcceptTheSignupFor(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	tc.backend.Script(http.MethodPost, "/v1/auth/register", http.StatusCreated, authResponseBody(email, "New user"))
	return nil
}

func theBackendWillRejectTheSignupEmailTaken(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.backend.Script(http.MethodPost, "/v1/auth/register", http.StatusConflict, map[string]any{
		"error": "email already registered",
		"code":  "AUTH-010001",
	})
	return nil
}

func iSignUpAsWithEmailAndPassword(ctx context.Context, displayName, email, password string) error {
	tc := GetTestContext(ctx)
	output, err := tc.registerUseCase.Execute(ctx, auth.RegisterUserInput{
		Email:         email,
		DisplayName:   displayName,
		Password:      password,
		TermsAccepted: true,
	})
	tc.lastErr = err
	if output != nil {
		tc.lastUser = output.User
	}
	return nil
}

func theSignupShouldSucceed(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastErr != nil {
		return fmt.Errorf("expected the signup to succeed, got %v", tc.lastErr)
	}
	if tc.lastUser == nil {
		return fmt.Errorf("expected a user in the signup output")
	}
	return nil
}

func theSignupShouldFailWithPasswordProblems(ctx context.Context) error {
	tc := GetTestContext(ctx)

	var validationErrs domainerror.ValidationErrors
	if !errors.As(tc.lastErr, &validationErrs) {
		return fmt.Errorf("expected validation errors, got %v", tc.lastErr)
	}
	if len(validationErrs.ByField("Password")) == 0 {
		return fmt.Errorf("expected password problems, got %v", validationErrs)
	}
	return nil
}

func theSignupShouldFailEmailTaken(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if !errors.Is(tc.lastErr, domainerror.ErrEmailAlreadyExists) {
		return fmt.Errorf("expected the email-taken error, got %v", tc.lastErr)
	}
	return nil
}

func theBackendWillAcceptTheLoginFor(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	tc.backend.Script(http.MethodPost, "/v1/auth/login", http.StatusOK, authResponseBody(email, "Returning user"))
	return nil
}

func theBackendWillRejectTheCredentials(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.backend.Script(http.MethodPost, "/v1/auth/login", http.StatusUnauthorized, map[string]any{
		"error": "invalid credentials",
		"code":  "AUTH-020001",
	})
	return nil
}

func iLogInAsWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	output, err := tc.loginUseCase.Execute(ctx, auth.LoginUserInput{Email: email, Password: password})
	tc.lastErr = err
	if output != nil {
		tc.lastUser = output.User
	}
	return nil
}

func theLoginShouldSucceed(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastErr != nil {
		return fmt.Errorf("expected the login to succeed, got %v", tc.lastErr)
	}
	return nil
}

func theLoginShouldFailInvalidCredentials(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if !errors.Is(tc.lastErr, domainerror.ErrInvalidCredentials) {
		return fmt.Errorf("expected invalid credentials, got %v", tc.lastErr)
	}
	return nil
}

// iAmSignedIn seeds the vault directly, skipping the login round trip.
func iAmSignedIn(ctx context.Context) error {
	tc := GetTestContext(ctx)
	return tc.tokenStore.Save(adapter.TokenPair{
		AccessToken:  "seeded-access-token",
		RefreshToken: "seeded-refresh-token",
	})
}

// iAmSignedInWithExpiringToken seeds the vault with a real (unsigned-secret)
// JWT whose exp claim is the given interval away.
func iAmSignedInWithExpiringToken(ctx context.Context, amount int, unit string) error {
	tc := GetTestContext(ctx)

	interval := time.Duration(amount) * time.Second
	if unit == "minutes" {
		interval = time.Duration(amount) * time.Minute
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "seeded-user",
		"exp": time.Now().Add(interval).Unix(),
	})
	signed, err := token.SignedString([]byte("not-the-backend-secret"))
	if err != nil {
		return err
	}

	return tc.tokenStore.Save(adapter.TokenPair{
		AccessToken:  signed,
		RefreshToken: "seeded-refresh-token",
	})
}

func theBackendWillRenewTheSession(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.backend.Script(http.MethodPost, "/v1/auth/refresh", http.StatusOK, map[string]any{
		"access_token":  "renewed-" + uuid.NewString(),
		"refresh_token": "renewed-" + uuid.NewString(),
	})
	return nil
}

func iRefreshTheSession(ctx context.Context) error {
	tc := GetTestContext(ctx)
	output, err := tc.refreshUseCase.Execute(ctx)
	tc.lastErr = err
	tc.lastRefresh = output
	return nil
}

func theSessionShouldBeRenewed(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastErr != nil {
		return fmt.Errorf("expected the refresh to succeed, got %v", tc.lastErr)
	}
	if !tc.lastRefresh.Refreshed {
		return fmt.Errorf("expected a refresh round trip")
	}
	return nil
}

func theSessionShouldBeLeftUntouched(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastErr != nil {
		return fmt.Errorf("expected the refresh check to succeed, got %v", tc.lastErr)
	}
	if tc.lastRefresh.Refreshed {
		return fmt.Errorf("expected no refresh for a still-fresh token")
	}
	if count := tc.backend.RequestCount(http.MethodPost, "/v1/auth/refresh"); count != 0 {
		return fmt.Errorf("expected no refresh request on the backend, got %d", count)
	}
	return nil
}

func iLogOut(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.lastErr = tc.logoutUseCase.Execute(ctx)
	return nil
}

func aSessionShouldBeStoredOnTheDevice(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tokens, err := tc.tokenStore.Load()
	if err != nil {
		return fmt.Errorf("expected a stored session, got %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return fmt.Errorf("expected a complete token pair, got %+v", tokens)
	}
	return nil
}

func noSessionShouldRemainOnTheDevice(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if _, err := tc.tokenStore.Load(); !errors.Is(err, domainerror.ErrNoSession) {
		return fmt.Errorf("expected no stored session, got %v", err)
	}
	return nil
}
