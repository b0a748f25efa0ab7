package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/backend/fake"
	"github.com/oookbaaa/Bridge-front-sub000/internal/dependencies/clock"
	"github.com/oookbaaa/Bridge-front-sub000/internal/dependencies/random"
	"github.com/oookbaaa/Bridge-front-sub000/internal/session"
	"github.com/oookbaaa/Bridge-front-sub000/internal/storage"
	"github.com/oookbaaa/Bridge-front-sub000/internal/storage/memory"
	redisstorage "github.com/oookbaaa/Bridge-front-sub000/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// fakeSecret signs tokens of the embedded development backend
const fakeSecret = "bridge-dev-secret"

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Components
	SessionManager *session.Manager
	Backend        *backend.Client

	// Fake is the embedded development backend, nil unless enabled
	Fake *fake.Server
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// BackendURL is the base path of the federation backend API
	// If empty, defaults to backend.DefaultBaseURL
	BackendURL string
	// FakeBackend serves an embedded in-memory backend instead of
	// proxying to BackendURL
	FakeBackend bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Create the backend client, against either the configured
	// federation API or the embedded fake
	var client *backend.Client
	var fakeSrv *fake.Server
	if cfg.FakeBackend {
		fakeSrv = fake.NewWithClock(fakeSecret, clk)
		client = backend.NewClientWithHTTP("http://fake-backend", fakeSrv.HTTPClient())
	} else {
		baseURL := cfg.BackendURL
		if baseURL == "" {
			baseURL = backend.DefaultBaseURL
		}
		client = backend.NewClient(baseURL)
	}

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		SessionManager: session.NewManager(store, rnd, logger),
		Backend:        client,
		Fake:           fakeSrv,
	}, nil
}
