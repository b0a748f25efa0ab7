package model

import "errors"

// Common errors used across the application
var (
	// Persisted client state errors
	ErrTokenNotFound = errors.New("token not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrDraftNotFound = errors.New("registration draft not found")

	// Content errors
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrNewsNotFound       = errors.New("news article not found")
)
