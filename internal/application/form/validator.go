// Package form validates user-submitted forms before anything reaches the
// network. Each form maps validator failures to the ordered, human-readable
// messages the screens render beneath their fields.
package form

import (
	"strings"

	"github.com/go-playground/validator/v10"

	domainerror "github.com/meetcute/client/internal/domain/error"
	"github.com/meetcute/client/internal/domain/policy"
)

// validate is shared across forms; validator instances cache struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// The "password" tag delegates to the domain password policy.
	if err := v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return policy.Evaluate(fl.Field().String()).Valid
	}); err != nil {
		panic(err)
	}

	return v
}

// collect maps validator failures onto a form's message table, preserving
// field order. A failed "password" tag expands into the policy evaluator's
// own messages so the screen can show exactly which requirements are unmet.
func collect(err error, messages map[string]string, password string) error {
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var out domainerror.ValidationErrors
	for _, fe := range fieldErrs {
		field := trimIndex(fe.Field())

		if fe.Tag() == "password" {
			for _, msg := range policy.Evaluate(password).Errors {
				out = append(out, domainerror.FieldError{Field: field, Message: msg})
			}
			continue
		}

		msg, found := messages[field+"."+fe.Tag()]
		if !found {
			msg = field + " is invalid"
		}
		out = append(out, domainerror.FieldError{Field: field, Message: msg})
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// trimIndex normalizes slice element names ("Interests[2]" -> "Interests").
func trimIndex(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}
