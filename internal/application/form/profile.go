package form

import (
	"errors"
	"time"

	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
)

// minAge is the minimum age to use the product.
const minAge = 18

// ProfileForm edits the user's public profile.
type ProfileForm struct {
	DisplayName string    `validate:"required,min=1,max=50"`
	Bio         string    `validate:"max=500"`
	BirthDate   time.Time `validate:"required"`
	Interests   []string  `validate:"max=10,dive,required,max=30"`
	City        string    `validate:"max=80"`
}

var profileMessages = map[string]string{
	"DisplayName.required": "Display name is required",
	"DisplayName.min":      "Display name is required",
	"DisplayName.max":      "Display name must be at most 50 characters",
	"Bio.max":              "Bio must be at most 500 characters",
	"BirthDate.required":   "Birth date is required",
	"Interests.max":        "You can list at most 10 interests",
	"Interests.required":   "Interests cannot be empty",
	"City.max":             "City must be at most 80 characters",
}

// Validate checks the form against the given current time (the birth date
// must imply an age of at least 18).
func (f *ProfileForm) Validate(now time.Time) error {
	var out domainerror.ValidationErrors

	if err := collect(validate.Struct(f), profileMessages, ""); err != nil {
		var fieldErrs domainerror.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		out = fieldErrs
	}

	if !f.BirthDate.IsZero() {
		profile := entity.Profile{BirthDate: f.BirthDate}
		if profile.Age(now) < minAge {
			out = append(out, domainerror.FieldError{
				Field:   "BirthDate",
				Message: "You must be at least 18 years old",
			})
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// ToEntity builds the profile entity submitted to the API.
func (f *ProfileForm) ToEntity() entity.Profile {
	return entity.Profile{
		DisplayName: f.DisplayName,
		Bio:         f.Bio,
		BirthDate:   f.BirthDate,
		Interests:   f.Interests,
		City:        f.City,
	}
}
