package wizard

import "github.com/oookbaaa/Bridge-front-sub000/internal/model"

// License sub-flow, nested inside the basic group. The transitions keep
// manual number entry and the "I don't know my number" declaration
// mutually exclusive; none of them affect the basic group's completed
// flag.

// SelectLicense applies the tri-state license selection. Any transition
// away from has-license clears the number, regardless of checkbox state.
func (w *Wizard) SelectLicense(choice model.LicenseChoice) {
	d := w.Draft()
	d.LicenseChoice = choice
	if choice != model.LicenseHas {
		d.LicenseNumber = ""
		d.LicenseUnknown = false
	}
}

// SetLicenseNumber records manual number entry. Ignored while the
// number input is disabled (selection is not has-license, or the
// unknown declaration is checked).
func (w *Wizard) SetLicenseNumber(number string) {
	d := w.Draft()
	if d.LicenseChoice != model.LicenseHas || d.LicenseUnknown {
		return
	}
	d.LicenseNumber = number
}

// SetLicenseUnknown toggles the "I don't know my number" declaration.
// Checking it clears the number field.
func (w *Wizard) SetLicenseUnknown(checked bool) {
	d := w.Draft()
	if d.LicenseChoice != model.LicenseHas {
		return
	}
	d.LicenseUnknown = checked
	if checked {
		d.LicenseNumber = ""
	}
}

// LicenseNumberDisabled reports whether the number input should be
// disabled: the unknown declaration owns the field.
func (w *Wizard) LicenseNumberDisabled() bool {
	d := w.Draft()
	return d.LicenseChoice != model.LicenseHas || d.LicenseUnknown
}

// LicenseUnknownDisabled reports whether the unknown checkbox should be
// disabled: a manually entered number owns the field.
func (w *Wizard) LicenseUnknownDisabled() bool {
	d := w.Draft()
	return d.LicenseChoice == model.LicenseHas && !d.LicenseUnknown && d.LicenseNumber != ""
}
