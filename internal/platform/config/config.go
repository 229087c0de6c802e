// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, security) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the account API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Empty disables the account cache.
	RedisURL        string        `env:"REDIS_URL"`
	AccountCacheTTL time.Duration `env:"ACCOUNT_CACHE_TTL" envDefault:"1m"`

	// ServerSecret signs session tokens; its first 21 characters also salt password hashes.
	ServerSecret    string `env:"SERVER_SECRET,required"`
	JWTAlgorithm    string `env:"JWT_ALGORITHM"     envDefault:"HS256"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES" envDefault:"30"`
	HashRounds      int    `env:"HASH_ROUNDS"       envDefault:"10"`

	// CookieSecure marks the session cookie as HTTPS-only. Always on in production.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`

	// Cross-Origin Resource Sharing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3333,http://localhost:8080" envSeparator:","`
}

// # Configuration Loading

// minSecretLength is the shortest server secret that can seed the password salt.
const minSecretLength = 21

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	return LoadWith(env.Options{})
}

// LoadWith parses configuration using explicit [env.Options], e.g. a fixed
// Environment map in tests.
func LoadWith(options env.Options) (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.ParseWithOptions(cfg, options); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// validate rejects values the server cannot start with.
func (c *Config) validate() error {
	var errs []error

	if len(c.ServerSecret) < minSecretLength {
		errs = append(errs, fmt.Errorf("SERVER_SECRET must be at least %d characters", minSecretLength))
	}
	if c.TokenTTLMinutes <= 0 {
		errs = append(errs, fmt.Errorf("TOKEN_TTL_MINUTES must be positive, got %d", c.TokenTTLMinutes))
	}
	if c.AccountCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("ACCOUNT_CACHE_TTL must not be negative, got %s", c.AccountCacheTTL))
	}

	return errors.Join(errs...)
}

// TokenTTL returns the session token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// SecureCookies reports whether the session cookie must carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return c.CookieSecure || c.IsProduction()
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
