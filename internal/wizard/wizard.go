// Package wizard implements the registration wizard state machine:
// three ordered field groups with per-group validation schemas,
// forward navigation gated on validation, and an aggregate final gate.
package wizard

import (
	"errors"
	"strconv"

	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
)

// Errors
var (
	ErrUnknownStep = errors.New("unknown wizard step")
	ErrStepLocked  = errors.New("previous step not completed")
	ErrNotLastStep = errors.New("submission only allowed from the last step")
)

// Wizard wraps a wizard state snapshot with transition behavior
type Wizard struct {
	state *model.WizardState
}

// New creates an empty wizard positioned on the first group
func New() *Wizard {
	return &Wizard{state: model.NewWizardState()}
}

// FromState restores a wizard from a persisted snapshot
func FromState(state *model.WizardState) *Wizard {
	if state == nil {
		return New()
	}
	if state.Completed == nil {
		state.Completed = make(map[model.Step]bool)
	}
	if state.Current == "" {
		state.Current = model.StepBasic
	}
	return &Wizard{state: state}
}

// State returns the snapshot for persistence
func (w *Wizard) State() *model.WizardState {
	return w.state
}

// Current returns the active group
func (w *Wizard) Current() model.Step {
	return w.state.Current
}

// Completed reports whether a group's validation has passed at least once
func (w *Wizard) Completed(step model.Step) bool {
	return w.state.Completed[step]
}

// Draft returns the mutable field values
func (w *Wizard) Draft() *model.RegistrationDraft {
	return &w.state.Draft
}

// Next validates the active group. On failure the wizard stays in place
// and the field-scoped errors are returned. On success the group is
// marked completed and the wizard advances (no-op on the last group).
func (w *Wizard) Next() error {
	if err := validateStep(w.state.Current, &w.state.Draft); err != nil {
		return err
	}

	w.state.Completed[w.state.Current] = true

	steps := model.Steps()
	idx := stepIndex(steps, w.state.Current)
	if idx >= 0 && idx < len(steps)-1 {
		w.state.Current = steps[idx+1]
	}
	return nil
}

// Previous moves to the immediately preceding group unconditionally.
// The completed flag of the group being left is kept.
func (w *Wizard) Previous() {
	steps := model.Steps()
	idx := stepIndex(steps, w.state.Current)
	if idx > 0 {
		w.state.Current = steps[idx-1]
	}
}

// JumpTo moves directly to a group. The first group is always
// reachable; a later group only when its immediately preceding group is
// completed. Jumping forward additionally re-runs validation of the
// active group exactly as Next does, and aborts on failure.
func (w *Wizard) JumpTo(target model.Step) error {
	steps := model.Steps()
	targetIdx := stepIndex(steps, target)
	if targetIdx < 0 {
		return ErrUnknownStep
	}

	currentIdx := stepIndex(steps, w.state.Current)
	if targetIdx == currentIdx {
		return nil
	}

	if targetIdx > 0 && !w.state.Completed[steps[targetIdx-1]] {
		return ErrStepLocked
	}

	if targetIdx > currentIdx {
		if err := validateStep(w.state.Current, &w.state.Draft); err != nil {
			return err
		}
		w.state.Completed[w.state.Current] = true
	}

	w.state.Current = target
	return nil
}

// Finalize is the submission gate, reachable only from the last group
// with every earlier group completed. It re-validates the aggregate
// schema and builds the registration payload, omitting optional fields
// left empty. The draft is untouched: a failed submission loses nothing.
func (w *Wizard) Finalize() (*backend.RegisterPayload, error) {
	steps := model.Steps()
	if w.state.Current != steps[len(steps)-1] {
		return nil, ErrNotLastStep
	}
	for _, step := range steps[:len(steps)-1] {
		if !w.state.Completed[step] {
			return nil, ErrStepLocked
		}
	}

	if err := validateAggregate(&w.state.Draft); err != nil {
		return nil, err
	}

	w.state.Completed[w.state.Current] = true
	return buildPayload(&w.state.Draft), nil
}

// buildPayload assembles the aggregate registration payload from a
// validated draft. The CIN is submitted as an integer; the license
// number only when the sub-flow made it meaningful.
func buildPayload(d *model.RegistrationDraft) *backend.RegisterPayload {
	cin, _ := strconv.Atoi(d.Cin) // validated as 8 digits

	p := &backend.RegisterPayload{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Password:  d.Password,
		City:      d.City,
		Cin:       cin,
		Gender:    string(d.Gender),
		Phone:     d.Phone,
		BirthDate: d.BirthDate,
		Address:   d.Address,

		Discipline:     d.Discipline,
		PassportNumber: d.PassportNumber,
		BirthPlace:     d.BirthPlace,
		StudyLevel:     d.StudyLevel,
		Club:           d.Club,
		NationalTeam:   d.NationalTeam,
	}

	if d.LicenseChoice == model.LicenseHas && !d.LicenseUnknown {
		p.LicenseNumber = d.LicenseNumber
	}

	return p
}

func stepIndex(steps []model.Step, step model.Step) int {
	for i, s := range steps {
		if s == step {
			return i
		}
	}
	return -1
}
