package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/meetcute/client/internal/domain/policy"
)

// registerPolicySteps registers password policy steps. The evaluator is pure,
// so these scenarios never touch the backend or the device stores.
func registerPolicySteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I evaluate the password "([^"]*)"$`, iEvaluateThePassword)
	ctx.Step(`^I evaluate an empty password$`, iEvaluateAnEmptyPassword)
	ctx.Step(`^the password should be accepted$`, thePasswordShouldBeAccepted)
	ctx.Step(`^the password should be rejected$`, thePasswordShouldBeRejected)
	ctx.Step(`^the strength should be "([^"]*)"$`, theStrengthShouldBe)
	ctx.Step(`^the problems should include "([^"]*)"$`, theProblemsShouldInclude)
	ctx.Step(`^the strength label should be "([^"]*)"$`, theStrengthLabelShouldBe)
}

func iEvaluateThePassword(ctx context.Context, password string) error {
	tc := GetTestContext(ctx)
	tc.lastEvaluation = policy.Evaluate(password)
	return nil
}

func iEvaluateAnEmptyPassword(ctx context.Context) error {
	return iEvaluateThePassword(ctx, "")
}

func thePasswordShouldBeAccepted(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if !tc.lastEvaluation.Valid {
		return fmt.Errorf("expected the password to be accepted, got problems %v", tc.lastEvaluation.Errors)
	}
	return nil
}

func thePasswordShouldBeRejected(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc.lastEvaluation.Valid {
		return fmt.Errorf("expected the password to be rejected")
	}
	return nil
}

func theStrengthShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if string(tc.lastEvaluation.Strength) != expected {
		return fmt.Errorf("expected strength %q, got %q", expected, tc.lastEvaluation.Strength)
	}
	return nil
}

func theProblemsShouldInclude(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	for _, message := range tc.lastEvaluation.Errors {
		if message == expected {
			return nil
		}
	}
	return fmt.Errorf("expected problems to include %q, got %v", expected, tc.lastEvaluation.Errors)
}

func theStrengthLabelShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if label := policy.StrengthLabel(tc.lastEvaluation.Strength); label != expected {
		return fmt.Errorf("expected label %q, got %q", expected, label)
	}
	return nil
}
