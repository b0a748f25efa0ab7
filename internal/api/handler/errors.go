package handler

import (
	"net/http"

	"github.com/oookbaaa/Bridge-front-sub000/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeValidationFailed   = apierr.CodeValidationFailed
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeAccessDenied       = apierr.CodeAccessDenied
	CodeStepLocked         = apierr.CodeStepLocked
	CodeNotLastStep        = apierr.CodeNotLastStep
	CodeUnknownStep        = apierr.CodeUnknownStep
	CodeSessionExpired     = apierr.CodeSessionExpired
	CodeBackendError       = apierr.CodeBackendError
	CodeBackendUnreachable = apierr.CodeBackendUnreachable
	CodeNotFound           = apierr.CodeNotFound
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error carrying a redirect target
func NewUnauthorizedError(redirectTo string) error {
	return apierr.NewUnauthorizedError(redirectTo)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
