package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the frontend service configuration, loaded from the
// environment
type Config struct {
	Host string `env:"BRIDGE_HOST" envDefault:""`
	Port int    `env:"BRIDGE_PORT" envDefault:"8080"`

	// BackendURL is the base path of the federation backend API
	BackendURL string `env:"BRIDGE_API_URL" envDefault:"http://localhost:5000/api"`

	// FakeBackend serves an embedded in-memory backend instead of
	// proxying to BackendURL (local development)
	FakeBackend bool `env:"BRIDGE_FAKE_BACKEND" envDefault:"false"`

	// StorageType selects the persisted-state backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
