package memory

import (
	"context"
	"sync"

	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
	"github.com/oookbaaa/Bridge-front-sub000/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	tokens map[string]string
	users  map[string]*model.User
	drafts map[string]*model.WizardState
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		tokens: make(map[string]string),
		users:  make(map[string]*model.User),
		drafts: make(map[string]*model.WizardState),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Token operations

func (s *Storage) SaveToken(ctx context.Context, visitorID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[visitorID] = token
	return nil
}

func (s *Storage) GetToken(ctx context.Context, visitorID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[visitorID]
	if !ok {
		return "", model.ErrTokenNotFound
	}
	return token, nil
}

func (s *Storage) DeleteToken(ctx context.Context, visitorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, visitorID)
	return nil
}

// User record operations

func (s *Storage) SaveUser(ctx context.Context, visitorID string, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[visitorID] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, visitorID string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[visitorID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, visitorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, visitorID)
	return nil
}

// Registration wizard draft operations

func (s *Storage) SaveDraft(ctx context.Context, visitorID string, state *model.WizardState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[visitorID] = state
	return nil
}

func (s *Storage) GetDraft(ctx context.Context, visitorID string) (*model.WizardState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.drafts[visitorID]
	if !ok {
		return nil, model.ErrDraftNotFound
	}
	return state, nil
}

func (s *Storage) DeleteDraft(ctx context.Context, visitorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, visitorID)
	return nil
}
