package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
	"github.com/oookbaaa/Bridge-front-sub000/internal/wizard"
)

// APIError represents an API error response. Fields carries field-scoped
// validation messages; RedirectTo carries a navigation target for
// unauthenticated requests.
type APIError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
	RedirectTo string            `json:"redirectTo,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeAccessDenied       = "ACCESS_DENIED"
	CodeStepLocked         = "STEP_LOCKED"
	CodeNotLastStep        = "NOT_LAST_STEP"
	CodeUnknownStep        = "UNKNOWN_STEP"
	CodeSessionExpired     = "SESSION_EXPIRED"
	CodeBackendError       = "BACKEND_ERROR"
	CodeBackendUnreachable = "BACKEND_UNREACHABLE"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Field-scoped validation failures: never escalate past the form
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for field, ferr := range fieldErrs {
			fields[field] = ferr.Error()
		}
		return &httpError{http.StatusBadRequest, APIError{
			Code:    CodeValidationFailed,
			Message: "Validation failed",
			Fields:  fields,
		}}
	}

	// Backend responses pass through with their own status and message
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		code := CodeBackendError
		if apiErr.Status == http.StatusUnauthorized {
			code = CodeSessionExpired
		}
		return &httpError{apiErr.Status, APIError{Code: code, Message: apiErr.Message}}
	}

	switch {
	case errors.Is(err, wizard.ErrStepLocked):
		return &httpError{http.StatusConflict, APIError{CodeStepLocked, "Complete the previous step first", nil, ""}}
	case errors.Is(err, wizard.ErrNotLastStep):
		return &httpError{http.StatusConflict, APIError{CodeNotLastStep, "Submission is only allowed from the last step", nil, ""}}
	case errors.Is(err, wizard.ErrUnknownStep):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStep, "Unknown wizard step", nil, ""}}

	case errors.Is(err, backend.ErrUnauthorized):
		return &httpError{http.StatusUnauthorized, APIError{CodeSessionExpired, "Session expired", nil, ""}}

	case errors.Is(err, model.ErrDraftNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, "No registration in progress", nil, ""}}
	case errors.Is(err, model.ErrTournamentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Tournament not found", nil, ""}}
	case errors.Is(err, model.ErrNewsNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, "News article not found", nil, ""}}

	default:
		return &httpError{http.StatusBadGateway, APIError{CodeBackendUnreachable, "Something went wrong. Please try again.", nil, ""}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewUnauthorizedError creates an unauthorized error carrying the
// navigation target the client should redirect to
func NewUnauthorizedError(redirectTo string) error {
	return &httpError{http.StatusUnauthorized, APIError{
		Code:       CodeUnauthorized,
		Message:    "Authentication required",
		RedirectTo: redirectTo,
	}}
}

// NewAccessDeniedError creates the access-denied error for authenticated
// visitors lacking the required role
func NewAccessDeniedError() error {
	return &httpError{http.StatusForbidden, APIError{
		Code:    CodeAccessDenied,
		Message: "You do not have permission to view this page",
	}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
