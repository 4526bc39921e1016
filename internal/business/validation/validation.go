// Package validation checks registration drafts before they are submitted.
//
// Nothing here performs I/O or keeps state: every call returns fresh values
// and leaves its arguments untouched.
package validation

import (
	"unicode/utf8"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"github.com/SergeyKozhin/user-management-backend/internal/pkg/validator"
)

const (
	minNameLength = 3

	msgFirstNameLength = "First name must be at least 3 characters"
	msgLastNameLength  = "Last name must be at least 3 characters"
	msgEmailFormat     = "Invalid email format"
	msgPhoneFormat     = "Phone number must include country code (+XX-XXXXXXXXXX)"
	msgGenderRequired  = "Gender is required"
	msgGenderUnknown   = "Gender must be one of Male, Female, Other"
	msgImageRequired   = "Profile image is required"
)

type Options struct {
	// RequireProfileImage blocks submission of drafts without a selected image.
	RequireProfileImage bool
}

type Validator struct {
	opts Options
}

func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

func (v *Validator) RequiresProfileImage() bool {
	return v.opts.RequireProfileImage
}

// Validate runs every rule against the draft and collects all failures.
func (v *Validator) Validate(draft model.RegistrationDraft) model.ValidationResult {
	val := validator.New()

	val.Check(utf8.RuneCountInString(draft.FirstName) >= minNameLength, model.FieldFirstName, msgFirstNameLength)
	val.Check(utf8.RuneCountInString(draft.LastName) >= minNameLength, model.FieldLastName, msgLastNameLength)
	val.Check(validator.Matches(draft.Email, validator.EmailRX), model.FieldEmail, msgEmailFormat)
	val.Check(validator.Matches(draft.Phone, validator.PhoneRX), model.FieldPhone, msgPhoneFormat)

	val.Check(draft.Gender != model.GenderUnset, model.FieldGender, msgGenderRequired)
	val.Check(draft.Gender == model.GenderUnset || draft.Gender.IsValid(), model.FieldGender, msgGenderUnknown)

	if v.opts.RequireProfileImage {
		val.Check(draft.ProfileImageRef != "", model.FieldProfileImage, msgImageRequired)
	}

	return model.ValidationResult(val.Errors)
}
