package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized indicates the backend rejected the bearer token.
// Any profile fetch returning this demotes the session to logged-out.
var ErrUnauthorized = errors.New("unauthorized")

// genericMessage is surfaced when the backend provides no error message
const genericMessage = "Something went wrong. Please try again."

// APIError is an error response from the federation backend
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (HTTP %d)", e.Message, e.Status)
}

// Unwrap lets callers match unauthorized responses with errors.Is
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// newAPIError builds an APIError, falling back to a generic message
// when the backend body carried none
func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = genericMessage
	}
	return &APIError{Status: status, Message: message}
}
