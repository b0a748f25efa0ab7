package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oookbaaa/Bridge-front-sub000/internal/api/middleware"
	"github.com/oookbaaa/Bridge-front-sub000/internal/api/request"
	"github.com/oookbaaa/Bridge-front-sub000/internal/api/response"
	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/guard"
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
	"github.com/oookbaaa/Bridge-front-sub000/internal/storage"
	"github.com/oookbaaa/Bridge-front-sub000/internal/wizard"
)

// WizardHandler handles the registration wizard endpoints. The draft is
// persisted per visitor so a reload resumes where the visitor left off.
type WizardHandler struct {
	storage storage.Storage
	backend *backend.Client
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(st storage.Storage, client *backend.Client) *WizardHandler {
	return &WizardHandler{storage: st, backend: client}
}

// load restores the visitor's wizard, or starts a fresh one
func (h *WizardHandler) load(r *http.Request) (*wizard.Wizard, error) {
	visitorID := middleware.GetVisitorID(r.Context())

	state, err := h.storage.GetDraft(r.Context(), visitorID)
	if err != nil {
		if errors.Is(err, model.ErrDraftNotFound) {
			return wizard.New(), nil
		}
		return nil, err
	}
	return wizard.FromState(state), nil
}

// save persists the visitor's wizard state
func (h *WizardHandler) save(r *http.Request, wiz *wizard.Wizard) error {
	visitorID := middleware.GetVisitorID(r.Context())
	return h.storage.SaveDraft(r.Context(), visitorID, wiz.State())
}

// Get handles GET /api/v1/register/wizard
func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	wiz, err := h.load(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WizardStateFromWizard(wiz))
}

// Update handles PATCH /api/v1/register/wizard. Only fields present in
// the request mutate the draft; the license fields route through the
// sub-flow so its coupling rules hold no matter what the client sends.
func (h *WizardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.WizardFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	wiz, err := h.load(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	applyFields(wiz, &req)

	if err := h.save(r, wiz); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WizardStateFromWizard(wiz))
}

// Next handles POST /api/v1/register/wizard/next
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, func(wiz *wizard.Wizard) error {
		return wiz.Next()
	})
}

// Previous handles POST /api/v1/register/wizard/previous
func (h *WizardHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, func(wiz *wizard.Wizard) error {
		wiz.Previous()
		return nil
	})
}

// Jump handles POST /api/v1/register/wizard/jump
func (h *WizardHandler) Jump(w http.ResponseWriter, r *http.Request) {
	var req request.JumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	h.navigate(w, r, func(wiz *wizard.Wizard) error {
		return wiz.JumpTo(model.Step(req.Step))
	})
}

// navigate runs a wizard transition and persists the outcome
func (h *WizardHandler) navigate(w http.ResponseWriter, r *http.Request, move func(*wizard.Wizard) error) {
	wiz, err := h.load(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := move(wiz); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.save(r, wiz); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WizardStateFromWizard(wiz))
}

// Submit handles POST /api/v1/register/submit. All groups are validated
// together, the aggregate is sent to the federation backend, and on
// success the visitor gets a session and the draft is discarded.
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	wiz, err := h.load(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	payload, err := wiz.Finalize()
	if err != nil {
		WriteError(w, err)
		return
	}

	auth, err := h.backend.Register(r.Context(), payload)
	if err != nil {
		WriteError(w, err)
		return
	}

	store := middleware.GetStore(r.Context())
	store.SetToken(r.Context(), auth.AccessToken)
	store.SetUser(r.Context(), &auth.User)

	visitorID := middleware.GetVisitorID(r.Context())
	// Best effort, an orphaned draft expires on its own
	_ = h.storage.DeleteDraft(r.Context(), visitorID)

	response.JSON(w, http.StatusCreated, response.RegisterResponse{
		SessionToken: visitorID,
		User:         auth.User,
		Navigation:   response.Navigation{RedirectTo: guard.DefaultDashboardPath},
	})
}

// applyFields copies the fields present in the request onto the draft
func applyFields(wiz *wizard.Wizard, req *request.WizardFieldsRequest) {
	d := wiz.Draft()

	if req.FirstName != nil {
		d.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		d.LastName = *req.LastName
	}
	if req.Email != nil {
		d.Email = *req.Email
	}
	if req.Password != nil {
		d.Password = *req.Password
	}
	if req.PasswordConfirm != nil {
		d.PasswordConfirm = *req.PasswordConfirm
	}

	// License sub-flow ordering: selection first, then the unknown flag,
	// then the number, so a single request behaves like the equivalent
	// sequence of form interactions
	if req.LicenseChoice != nil {
		wiz.SelectLicense(model.LicenseChoice(*req.LicenseChoice))
	}
	if req.LicenseUnknown != nil {
		wiz.SetLicenseUnknown(*req.LicenseUnknown)
	}
	if req.LicenseNumber != nil {
		wiz.SetLicenseNumber(*req.LicenseNumber)
	}

	if req.City != nil {
		d.City = *req.City
	}
	if req.Cin != nil {
		d.Cin = *req.Cin
	}
	if req.Gender != nil {
		d.Gender = model.Gender(*req.Gender)
	}
	if req.Phone != nil {
		d.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		d.BirthDate = *req.BirthDate
	}
	if req.Address != nil {
		d.Address = *req.Address
	}

	if req.Discipline != nil {
		d.Discipline = *req.Discipline
	}
	if req.PassportNumber != nil {
		d.PassportNumber = *req.PassportNumber
	}
	if req.BirthPlace != nil {
		d.BirthPlace = *req.BirthPlace
	}
	if req.StudyLevel != nil {
		d.StudyLevel = *req.StudyLevel
	}
	if req.Club != nil {
		d.Club = *req.Club
	}
	if req.NationalTeam != nil {
		d.NationalTeam = *req.NationalTeam
	}
}
