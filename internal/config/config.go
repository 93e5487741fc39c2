package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration loaded from environment variables
type Config struct {
	Host     string `env:"HOST" envDefault:""`
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
}

// Load parses configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
