package session

import (
	"context"
	"log/slog"

	"github.com/oookbaaa/Bridge-front-sub000/internal/dependencies/random"
	"github.com/oookbaaa/Bridge-front-sub000/internal/storage"
)

const visitorIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Manager hands out initialized per-visitor stores
type Manager struct {
	storage storage.Storage
	logger  *slog.Logger
	random  random.Random
}

// NewManager creates a session manager
func NewManager(st storage.Storage, rnd random.Random, logger *slog.Logger) *Manager {
	return &Manager{
		storage: st,
		logger:  logger,
		random:  rnd,
	}
}

// Store returns an initialized store for the visitor
func (m *Manager) Store(ctx context.Context, visitorID string) *Store {
	s := NewStore(m.storage, m.logger, visitorID)
	s.Initialize(ctx)
	return s
}

// NewVisitorID generates a random visitor identifier
func (m *Manager) NewVisitorID() string {
	return "v_" + m.random.String(22, visitorIDAlphabet)
}
