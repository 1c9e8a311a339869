package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration, loaded from the environment
type Config struct {
	Host     string `env:"HOST" envDefault:""`
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	// The admin account is created at startup if it does not exist.
	// An empty password disables the bootstrap.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"spiritx_admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:""`

	SessionDuration time.Duration `env:"SESSION_DURATION" envDefault:"24h"`

	// The assistant falls back to canned replies without an API key
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// Load parses the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
