package response

import (
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
	"github.com/oookbaaa/Bridge-front-sub000/internal/session"
	"github.com/oookbaaa/Bridge-front-sub000/internal/wizard"
)

// AuthResponse is returned by login and registration submission. The
// session token is the value clients present as their bearer credential.
type AuthResponse struct {
	SessionToken string     `json:"session_token"`
	User         model.User `json:"user"`
}

// Navigation is an explicit navigation instruction for the client
type Navigation struct {
	RedirectTo string `json:"redirectTo"`
	Hard       bool   `json:"hard,omitempty"`
}

// NavigationFromIntent converts a session navigation intent
func NavigationFromIntent(intent session.NavigationIntent) Navigation {
	return Navigation{
		RedirectTo: intent.RedirectTo,
		Hard:       intent.Hard,
	}
}

// LogoutResponse is returned by POST /auth/logout
type LogoutResponse struct {
	Navigation Navigation `json:"navigation"`
}

// WizardState describes the registration wizard for rendering
type WizardState struct {
	CurrentStep    string                  `json:"current_step"`
	StepOrder      []string                `json:"step_order"`
	CompletedSteps []string                `json:"completed_steps"`
	Draft          model.RegistrationDraft `json:"draft"`

	LicenseNumberDisabled  bool `json:"license_number_disabled"`
	LicenseUnknownDisabled bool `json:"license_unknown_disabled"`
}

// WizardStateFromWizard converts a wizard to its response form
func WizardStateFromWizard(w *wizard.Wizard) WizardState {
	order := make([]string, 0, len(model.Steps()))
	completed := make([]string, 0, len(model.Steps()))
	for _, step := range model.Steps() {
		order = append(order, string(step))
		if w.Completed(step) {
			completed = append(completed, string(step))
		}
	}

	state := WizardState{
		CurrentStep:            string(w.Current()),
		StepOrder:              order,
		CompletedSteps:         completed,
		Draft:                  *w.Draft(),
		LicenseNumberDisabled:  w.LicenseNumberDisabled(),
		LicenseUnknownDisabled: w.LicenseUnknownDisabled(),
	}
	// Never echo credentials back to the client
	state.Draft.Password = ""
	state.Draft.PasswordConfirm = ""
	return state
}

// RegisterResponse is returned by a successful wizard submission
type RegisterResponse struct {
	SessionToken string     `json:"session_token"`
	User         model.User `json:"user"`
	Navigation   Navigation `json:"navigation"`
}
