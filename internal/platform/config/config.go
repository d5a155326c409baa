// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config maps environment variables onto the Traders runtime settings.

It uses 'caarlos0/env' for parsing and defaults, then applies the
cross-field rules env tags cannot express (a postgres store needs a DSN).

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/traders/internal/platform/constants"
)

// # Store Drivers

const (
	// DriverMemory serves the embedded seed data set.
	DriverMemory = "memory"

	// DriverPostgres serves catalog records from PostgreSQL.
	DriverPostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the Traders API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StoreDriver selects where catalog records come from.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`

	// Relational Database (PostgreSQL), used by the postgres driver only.
	DatabaseURL   string `env:"DATABASE_URL"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Redis backs gallery likes and notification fan-out when set.
	RedisURL string `env:"REDIS_URL"`

	// Dashboard token keys. The server only needs the public key.
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH"`
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`

	// ContactAckDelay is the simulated processing time of a contact submission.
	ContactAckDelay time.Duration `env:"CONTACT_ACK_DELAY" envDefault:"2s"`

	// AllowedOriginSuffix is the CORS allow-list outside development.
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"tradersindia.com"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate enforces the rules that span more than one variable.
func (c *Config) Validate() error {
	var errs []error

	switch c.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("config: DATABASE_URL is required when STORE_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver))
	}

	if c.ContactAckDelay < 0 {
		errs = append(errs, errors.New("config: CONTACT_ACK_DELAY must not be negative"))
	}
	if c.ContactAckDelay >= constants.GlobalRequestTimeout {
		errs = append(errs, fmt.Errorf("config: CONTACT_ACK_DELAY must be shorter than the %s request timeout", constants.GlobalRequestTimeout))
	}

	return errors.Join(errs...)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// UsesPostgres reports whether catalog records come from PostgreSQL.
func (c *Config) UsesPostgres() bool {
	return c.StoreDriver == DriverPostgres
}

// UsesRedis reports whether a Redis URL has been configured.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}

// DashboardsEnabled reports whether a token verifier can be built.
func (c *Config) DashboardsEnabled() bool {
	return c.JWTPubKeyPath != ""
}

// OriginSuffix implements the CORS middleware's configuration contract.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
