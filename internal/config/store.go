package config

import (
	"fmt"
	"time"
)

// Store drivers.
const (
	StoreDriverREST     = "rest"
	StoreDriverPostgres = "postgres"
)

// Placeholder connection values used when the hosted store is not configured.
// The service still starts; every remote call will fail at request time.
const (
	PlaceholderStoreURL = "https://placeholder.supabase.co"
	PlaceholderStoreKey = "placeholder-key"
)

// StoreConfig selects and configures the remote data store.
type StoreConfig struct {
	Driver  string
	URL     string
	AnonKey string

	// JWTSecret signs access tokens issued by the postgres driver.
	JWTSecret  string
	SessionTTL time.Duration

	// Warnings collects configuration problems that do not stop startup.
	Warnings []string
}

// LoadStoreConfigFromEnv loads store configuration from environment variables.
// A missing URL or key falls back to placeholders and records a warning.
func LoadStoreConfigFromEnv() StoreConfig {
	cfg := StoreConfig{
		Driver:     GetEnv("STORE_DRIVER", StoreDriverREST),
		URL:        GetEnv("STORE_URL", ""),
		AnonKey:    GetEnv("STORE_ANON_KEY", ""),
		JWTSecret:  GetEnv("STORE_JWT_SECRET", ""),
		SessionTTL: GetEnvDuration("STORE_SESSION_TTL", time.Hour),
	}

	if cfg.Driver == StoreDriverREST && (cfg.URL == "" || cfg.AnonKey == "") {
		cfg.Warnings = append(cfg.Warnings,
			"STORE_URL or STORE_ANON_KEY is not set; using placeholder values, remote calls will fail")
		if cfg.URL == "" {
			cfg.URL = PlaceholderStoreURL
		}
		if cfg.AnonKey == "" {
			cfg.AnonKey = PlaceholderStoreKey
		}
	}

	return cfg
}

// IsPlaceholder reports whether placeholder values are in use.
func (c StoreConfig) IsPlaceholder() bool {
	return c.URL == PlaceholderStoreURL || c.AnonKey == PlaceholderStoreKey
}

// Validate validates store configuration.
func (c StoreConfig) Validate() error {
	switch c.Driver {
	case StoreDriverREST:
		if c.URL == "" {
			return fmt.Errorf("STORE_URL must not be empty")
		}
	case StoreDriverPostgres:
		if len(c.JWTSecret) < 16 {
			return fmt.Errorf("STORE_JWT_SECRET must be at least 16 characters for the postgres driver")
		}
		if c.SessionTTL <= 0 {
			return fmt.Errorf("STORE_SESSION_TTL must be greater than 0")
		}
	default:
		return fmt.Errorf("invalid STORE_DRIVER: %s (must be: rest, postgres)", c.Driver)
	}
	return nil
}
