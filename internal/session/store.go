// Package session holds the Session/Authorization Store: the single
// source of truth for "who is logged in" for one visitor, mirrored to
// persistent storage after every mutation.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
	"github.com/oookbaaa/Bridge-front-sub000/internal/storage"
)

// DefaultLoginPath is where logged-out visitors are sent
const DefaultLoginPath = "/login"

// NavigationIntent is an explicit navigation instruction returned to the
// caller instead of performing a redirect side effect. Hard intents
// discard any in-flight application state.
type NavigationIntent struct {
	RedirectTo string `json:"redirectTo"`
	Hard       bool   `json:"hard,omitempty"`
}

// ProfileFetcher fetches the current user record for a bearer token
type ProfileFetcher interface {
	Profile(ctx context.Context, token string) (*model.User, error)
}

// Store holds the authentication token and user record for one visitor.
// The token and user are set and cleared together: the store is
// authenticated only while both are present.
type Store struct {
	storage   storage.Storage
	logger    *slog.Logger
	visitorID string
	loginPath string

	mu          sync.RWMutex
	token       string
	user        *model.User
	initialized bool
}

// NewStore creates a store bound to a visitor ID
func NewStore(st storage.Storage, logger *slog.Logger, visitorID string) *Store {
	return &Store{
		storage:   st,
		logger:    logger,
		visitorID: visitorID,
		loginPath: DefaultLoginPath,
	}
}

// Initialize loads previously persisted state. Missing or unparsable
// values degrade silently to "not authenticated"; a corrupted persisted
// user record is purged. The initializing state terminates exactly once,
// unconditionally.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.initialized = true }()

	if s.initialized {
		return
	}

	token, err := s.storage.GetToken(ctx, s.visitorID)
	if err != nil {
		if !errors.Is(err, model.ErrTokenNotFound) {
			s.logger.Warn("failed to load persisted token", slog.String("error", err.Error()))
		}
		return
	}

	user, err := s.storage.GetUser(ctx, s.visitorID)
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			// Corrupted record: purge it so the next load starts clean
			s.logger.Warn("purging unparsable persisted user", slog.String("error", err.Error()))
			if derr := s.storage.DeleteUser(ctx, s.visitorID); derr != nil {
				s.logger.Warn("failed to purge persisted user", slog.String("error", derr.Error()))
			}
		}
		return
	}

	s.token = token
	s.user = user
}

// Initialized reports whether the initial storage read has completed
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// SetToken stores a new token in memory and persistence. An empty token
// purges both the token and the user, in memory and in persistence.
// Storage write failures are non-fatal, best-effort.
func (s *Store) SetToken(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		s.clearLocked(ctx)
		return
	}

	s.token = token
	if err := s.storage.SaveToken(ctx, s.visitorID, token); err != nil {
		s.logger.Warn("failed to persist token", slog.String("error", err.Error()))
	}
}

// SetUser mirrors the given user into persistence: stored when non-nil,
// purged when nil
func (s *Store) SetUser(ctx context.Context, user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	if user == nil {
		if err := s.storage.DeleteUser(ctx, s.visitorID); err != nil {
			s.logger.Warn("failed to purge persisted user", slog.String("error", err.Error()))
		}
		return
	}
	if err := s.storage.SaveUser(ctx, s.visitorID, user); err != nil {
		s.logger.Warn("failed to persist user", slog.String("error", err.Error()))
	}
}

// Token returns the current bearer token, or empty when logged out
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user record, or nil when logged out
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated is true iff both token and user are present.
// This is the sole predicate route guards consult.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// Logout clears both values, purges persistence, and returns a hard
// navigation intent to the login entry point. Idempotent.
func (s *Store) Logout(ctx context.Context) NavigationIntent {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked(ctx)
	return NavigationIntent{RedirectTo: s.loginPath, Hard: true}
}

// RefreshProfile re-fetches the user record from the backend. An
// unauthorized response silently demotes the session to logged-out
// (expected on token expiry); transport failures also clear the session
// but are returned so the caller can log them.
func (s *Store) RefreshProfile(ctx context.Context, fetcher ProfileFetcher) (*model.User, error) {
	token := s.Token()
	if token == "" {
		return nil, nil
	}

	user, err := fetcher.Profile(ctx, token)
	if err != nil {
		s.mu.Lock()
		s.clearLocked(ctx)
		s.mu.Unlock()

		if errors.Is(err, backend.ErrUnauthorized) {
			return nil, nil
		}
		return nil, err
	}

	s.SetUser(ctx, user)
	return user, nil
}

// clearLocked wipes both in-memory values and purges both persisted
// keys. Callers must hold the write lock.
func (s *Store) clearLocked(ctx context.Context) {
	s.token = ""
	s.user = nil

	if err := s.storage.DeleteToken(ctx, s.visitorID); err != nil {
		s.logger.Warn("failed to purge persisted token", slog.String("error", err.Error()))
	}
	if err := s.storage.DeleteUser(ctx, s.visitorID); err != nil {
		s.logger.Warn("failed to purge persisted user", slog.String("error", err.Error()))
	}
}
