package wizard

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
)

var (
	// National ID card: exactly 8 digits
	cinPattern = regexp.MustCompile(`^[0-9]{8}$`)
	// Tunisian local or international number: optional +216/00216
	// prefix, then 8 digits starting with 2, 4, 5 or 9
	phonePattern = regexp.MustCompile(`^((\+|00)216)?[2459][0-9]{7}$`)
)

const birthDateLayout = "2006-01-02"

// validateBasic checks the basic group: identity, credentials and the
// optional license number
func validateBasic(d *model.RegistrationDraft) error {
	return validation.ValidateStruct(d,
		validation.Field(&d.FirstName, validation.Required),
		validation.Field(&d.LastName, validation.Required),
		validation.Field(&d.Email, validation.Required, is.Email),
		validation.Field(&d.Password, validation.Required, validation.Length(6, 0)),
		validation.Field(&d.PasswordConfirm,
			validation.Required,
			validation.In(d.Password).Error("passwords do not match"),
		),
		// License number is optional within its own schema; the
		// sub-flow decides whether it is meaningful at all
		validation.Field(&d.LicenseNumber, validation.Length(0, 32)),
	)
}

// validateDetails checks the details group: civil status fields
func validateDetails(d *model.RegistrationDraft) error {
	return validation.ValidateStruct(d,
		validation.Field(&d.City, validation.Required),
		validation.Field(&d.Cin,
			validation.Required,
			validation.Match(cinPattern).Error("must be exactly 8 digits"),
		),
		validation.Field(&d.Gender,
			validation.Required,
			validation.In(model.GenderMale, model.GenderFemale),
		),
		validation.Field(&d.Phone,
			validation.Required,
			validation.Match(phonePattern).Error("must be a valid Tunisian phone number"),
		),
		validation.Field(&d.BirthDate, validation.Required, validation.Date(birthDateLayout)),
		validation.Field(&d.Address, validation.Required),
	)
}

// validateOptional checks the optional group. Every field may be left
// empty, so only format constraints apply.
func validateOptional(d *model.RegistrationDraft) error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Discipline, validation.Length(0, 64)),
		validation.Field(&d.PassportNumber, validation.Length(0, 32)),
		validation.Field(&d.BirthPlace, validation.Length(0, 64)),
		validation.Field(&d.StudyLevel, validation.Length(0, 64)),
		validation.Field(&d.Club, validation.Length(0, 64)),
	)
}

// validateStep runs the schema owned by the given group
func validateStep(step model.Step, d *model.RegistrationDraft) error {
	switch step {
	case model.StepBasic:
		return validateBasic(d)
	case model.StepDetails:
		return validateDetails(d)
	case model.StepOptional:
		return validateOptional(d)
	default:
		return ErrUnknownStep
	}
}

// validateAggregate runs the union of all group schemas, the final gate
// before submission. Field errors from every group are merged.
func validateAggregate(d *model.RegistrationDraft) error {
	merged := validation.Errors{}
	for _, step := range model.Steps() {
		if err := validateStep(step, d); err != nil {
			var fieldErrs validation.Errors
			if errors.As(err, &fieldErrs) {
				for field, ferr := range fieldErrs {
					merged[field] = ferr
				}
				continue
			}
			return err
		}
	}
	if len(merged) > 0 {
		return merged
	}
	return nil
}
