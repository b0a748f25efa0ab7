package storage

import (
	"context"

	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
)

// Storage defines the interface for persisted client state.
// Everything is keyed by visitor ID: the token and user records form the
// session pair, the draft holds an in-progress registration wizard.
type Storage interface {
	// Token operations (raw bearer credential string)
	SaveToken(ctx context.Context, visitorID, token string) error
	GetToken(ctx context.Context, visitorID string) (string, error)
	DeleteToken(ctx context.Context, visitorID string) error

	// User record operations (serialized JSON)
	SaveUser(ctx context.Context, visitorID string, user *model.User) error
	GetUser(ctx context.Context, visitorID string) (*model.User, error)
	DeleteUser(ctx context.Context, visitorID string) error

	// Registration wizard draft operations
	SaveDraft(ctx context.Context, visitorID string, state *model.WizardState) error
	GetDraft(ctx context.Context, visitorID string) (*model.WizardState, error)
	DeleteDraft(ctx context.Context, visitorID string) error
}
