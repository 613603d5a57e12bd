package config

import (
	"fmt"
	"time"
)

// Snapshot backends.
const (
	SnapshotBackendMemory = "memory"
	SnapshotBackendFile   = "file"
	SnapshotBackendRedis  = "redis"
)

// SessionConfig configures per-client session state and its persisted snapshot.
type SessionConfig struct {
	SnapshotBackend string
	SnapshotDir     string
	SnapshotName    string
	SnapshotTTL     time.Duration
	RedisURL        string

	CookieName   string
	CookieSecure bool
	CookieMaxAge time.Duration
}

// LoadSessionConfigFromEnv loads session configuration from environment variables.
func LoadSessionConfigFromEnv() SessionConfig {
	return SessionConfig{
		SnapshotBackend: GetEnv("SNAPSHOT_BACKEND", SnapshotBackendMemory),
		SnapshotDir:     GetEnv("SNAPSHOT_DIR", "data/snapshots"),
		SnapshotName:    GetEnv("SNAPSHOT_NAME", "auth-store"),
		SnapshotTTL:     GetEnvDuration("SNAPSHOT_TTL", 0),
		RedisURL:        GetEnv("REDIS_URL", "redis://localhost:6379/0"),
		CookieName:      GetEnv("SESSION_COOKIE", "volleystats_client"),
		CookieSecure:    GetEnvBool("SESSION_COOKIE_SECURE", false),
		CookieMaxAge:    GetEnvDuration("SESSION_COOKIE_MAX_AGE", 30*24*time.Hour),
	}
}

// Validate validates session configuration.
func (c SessionConfig) Validate() error {
	switch c.SnapshotBackend {
	case SnapshotBackendMemory:
	case SnapshotBackendFile:
		if c.SnapshotDir == "" {
			return fmt.Errorf("SNAPSHOT_DIR must not be empty for the file backend")
		}
	case SnapshotBackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL must not be empty for the redis backend")
		}
	default:
		return fmt.Errorf("invalid SNAPSHOT_BACKEND: %s (must be: memory, file, redis)", c.SnapshotBackend)
	}
	if c.SnapshotName == "" {
		return fmt.Errorf("SNAPSHOT_NAME must not be empty")
	}
	if c.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	return nil
}
