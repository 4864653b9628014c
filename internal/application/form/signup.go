package form

import "github.com/meetcute/client/internal/domain/policy"

// SignupForm is the account creation form.
type SignupForm struct {
	Email         string `validate:"required,email"`
	DisplayName   string `validate:"required,min=1,max=50"`
	Password      string `validate:"required,password"`
	TermsAccepted bool   `validate:"required"`
}

var signupMessages = map[string]string{
	"Email.required":         "Email is required",
	"Email.email":            "Email address is not valid",
	"DisplayName.required":   "Display name is required",
	"DisplayName.min":        "Display name is required",
	"DisplayName.max":        "Display name must be at most 50 characters",
	"Password.required":      "Password is required",
	"TermsAccepted.required": "You must accept the terms of service",
}

// Validate checks the form and returns every problem found as domain
// ValidationErrors, password policy details included. Signup submission is
// blocked while it returns a non-nil error.
func (f *SignupForm) Validate() error {
	return collect(validate.Struct(f), signupMessages, f.Password)
}

// PasswordStrength reports the rating for the current password value. The
// signup screen calls this on every keystroke to drive the strength meter,
// together with policy.StrengthColor and policy.StrengthLabel.
func (f *SignupForm) PasswordStrength() policy.Strength {
	return policy.Evaluate(f.Password).Strength
}
