package model

// Step identifies one of the ordered registration wizard groups
type Step string

// Wizard steps, in navigation order
const (
	StepBasic    Step = "basic"
	StepDetails  Step = "details"
	StepOptional Step = "optional"
)

// Steps returns the wizard groups in navigation order
func Steps() []Step {
	return []Step{StepBasic, StepDetails, StepOptional}
}

// Gender values accepted by the registration form
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// LicenseChoice is the tri-state license selection of the basic group
type LicenseChoice string

const (
	LicenseUnset LicenseChoice = ""
	LicenseHas   LicenseChoice = "has-license"
	LicenseNone  LicenseChoice = "no-license"
)

// RegistrationDraft holds the field values entered across the wizard.
// Fields are grouped basic / details / optional; a group is validated
// as a whole when the wizard leaves it.
type RegistrationDraft struct {
	// Basic group
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`

	// License sub-flow (basic group, all optional)
	LicenseChoice  LicenseChoice `json:"licenseChoice"`
	LicenseNumber  string        `json:"licenseNumber"`
	LicenseUnknown bool          `json:"licenseUnknown"`

	// Details group
	City      string `json:"city"`
	Cin       string `json:"cin"`
	Gender    Gender `json:"gender"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate"`
	Address   string `json:"address"`

	// Optional group
	Discipline     string `json:"discipline"`
	PassportNumber string `json:"passportNumber"`
	BirthPlace     string `json:"birthPlace"`
	StudyLevel     string `json:"studyLevel"`
	Club           string `json:"club"`
	NationalTeam   bool   `json:"nationalTeam"`
}

// WizardState is the persisted snapshot of a visitor's registration wizard
type WizardState struct {
	Draft     RegistrationDraft `json:"draft"`
	Current   Step              `json:"current"`
	Completed map[Step]bool     `json:"completed"`
}

// NewWizardState returns an empty wizard positioned on the first group
func NewWizardState() *WizardState {
	return &WizardState{
		Current:   StepBasic,
		Completed: make(map[Step]bool),
	}
}
