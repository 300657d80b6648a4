package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields
// are populated from environment variables using the caarlos0/env
// library; the nested structs are tagged with envPrefix so their fields
// are parsed with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// StoreDriver selects the target store backend: "redis" or
	// "memory". The memory driver keeps records in-process and is meant
	// for local development and tests.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"redis"`

	// HTTP holds configuration for the HTTP server (prefix HTTP_).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (prefix LOG_).
	Log configs.Logger `envPrefix:"LOG_"`

	// Redis configures the redis store driver (prefix REDIS_).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Decision configures the decision engine (prefix DECISION_).
	Decision configs.Decision `envPrefix:"DECISION_"`

	// RateLimit configures the decision-route limiter (prefix RATE_).
	RateLimit configs.RateLimit `envPrefix:"RATE_"`
}

// Load reads configuration from environment variables into a Config.
// All fields fall back to their declared defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
