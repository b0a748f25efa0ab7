package request

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	LoginIdentifier string `json:"loginIdentifier"`
	Password        string `json:"password"`
}

// WizardFieldsRequest is the body for PATCH /register/wizard. Pointer
// fields distinguish "not sent" from "set to empty": only fields present
// in the request mutate the draft.
type WizardFieldsRequest struct {
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
	Email           *string `json:"email,omitempty"`
	Password        *string `json:"password,omitempty"`
	PasswordConfirm *string `json:"passwordConfirm,omitempty"`

	LicenseChoice  *string `json:"licenseChoice,omitempty"`
	LicenseNumber  *string `json:"licenseNumber,omitempty"`
	LicenseUnknown *bool   `json:"licenseUnknown,omitempty"`

	City      *string `json:"city,omitempty"`
	Cin       *string `json:"cin,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Address   *string `json:"address,omitempty"`

	Discipline     *string `json:"discipline,omitempty"`
	PassportNumber *string `json:"passportNumber,omitempty"`
	BirthPlace     *string `json:"birthPlace,omitempty"`
	StudyLevel     *string `json:"studyLevel,omitempty"`
	Club           *string `json:"club,omitempty"`
	NationalTeam   *bool   `json:"nationalTeam,omitempty"`
}

// JumpRequest is the body for POST /register/wizard/jump
type JumpRequest struct {
	Step string `json:"step"`
}
