package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
	"github.com/oookbaaa/Bridge-front-sub000/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Token operations

func (s *Storage) SaveToken(ctx context.Context, visitorID, token string) error {
	return s.client.Set(ctx, tokenKey(visitorID), token, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetToken(ctx context.Context, visitorID string) (string, error) {
	token, err := s.client.Get(ctx, tokenKey(visitorID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrTokenNotFound
		}
		return "", err
	}
	return token, nil
}

func (s *Storage) DeleteToken(ctx context.Context, visitorID string) error {
	return s.client.Del(ctx, tokenKey(visitorID)).Err()
}

// User record operations

func (s *Storage) SaveUser(ctx context.Context, visitorID string, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(visitorID), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetUser(ctx context.Context, visitorID string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(visitorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, visitorID string) error {
	return s.client.Del(ctx, userKey(visitorID)).Err()
}

// Registration wizard draft operations

func (s *Storage) SaveDraft(ctx context.Context, visitorID string, state *model.WizardState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKey(visitorID), data, s.cfg.DraftTTL).Err()
}

func (s *Storage) GetDraft(ctx context.Context, visitorID string) (*model.WizardState, error) {
	data, err := s.client.Get(ctx, draftKey(visitorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDraftNotFound
		}
		return nil, err
	}

	var state model.WizardState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *Storage) DeleteDraft(ctx context.Context, visitorID string) error {
	return s.client.Del(ctx, draftKey(visitorID)).Err()
}
