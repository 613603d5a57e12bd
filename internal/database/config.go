// Package database opens and migrates the PostgreSQL database behind the
// postgres store driver.
package database

import (
	"fmt"
	"strings"
	"time"

	appConfig "github.com/marceldopr/Volleyball-stats-definitiu/internal/config"
	"github.com/marceldopr/Volleyball-stats-definitiu/pkg/retry"
)

// Config holds database connection configuration.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string

	MigrationsPath string

	Pool  PoolConfig
	Retry retry.Config
}

// LoadConfigFromEnv loads database configuration from DB_* variables.
func LoadConfigFromEnv() Config {
	return Config{
		Host:           appConfig.GetEnv("DB_HOST", "localhost"),
		User:           appConfig.GetEnv("DB_USER", "postgres"),
		Password:       appConfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:         appConfig.GetEnv("DB_NAME", "volleystats"),
		Port:           appConfig.GetEnv("DB_PORT", "5432"),
		SSLMode:        appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone:       appConfig.GetEnv("DB_TIMEZONE", "UTC"),
		MigrationsPath: appConfig.GetEnv("MIGRATIONS_PATH", "migrations"),
		Pool:           LoadPoolConfigFromEnv(),
		Retry:          LoadRetryConfigFromEnv(),
	}
}

// LoadRetryConfigFromEnv loads the connect retry strategy.
func LoadRetryConfigFromEnv() retry.Config {
	cfg := retry.PostgresConfig()
	cfg.MaxAttempts = appConfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = appConfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = appConfig.GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	return cfg
}

// Validate checks the connection settings.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("DB_HOST must not be empty")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	switch c.SSLMode {
	case "disable", "allow", "prefer", "require", "verify-ca", "verify-full":
	default:
		return fmt.Errorf("invalid DB_SSLMODE: %s", c.SSLMode)
	}
	if err := c.Pool.Validate(); err != nil {
		return fmt.Errorf("pool config validation failed: %w", err)
	}
	return nil
}

// DSN returns the key/value connection string used by gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode, c.TimeZone)
}

// SanitizeError removes the password from connection errors.
func (c Config) SanitizeError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if c.Password != "" {
		msg = strings.ReplaceAll(msg, c.Password, "***")
	}
	return fmt.Errorf("failed to connect to database: %s", msg)
}

// PoolConfig holds connection pool settings.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig returns the default pool settings.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}
}

// LoadPoolConfigFromEnv loads pool settings from DB_POOL_* variables.
func LoadPoolConfigFromEnv() PoolConfig {
	def := DefaultPoolConfig()
	return PoolConfig{
		MaxOpenConns:    appConfig.GetEnvInt("DB_POOL_MAX_OPEN", def.MaxOpenConns),
		MaxIdleConns:    appConfig.GetEnvInt("DB_POOL_MAX_IDLE", def.MaxIdleConns),
		ConnMaxLifetime: appConfig.GetEnvDuration("DB_POOL_MAX_LIFETIME", def.ConnMaxLifetime),
		ConnMaxIdleTime: appConfig.GetEnvDuration("DB_POOL_MAX_IDLE_TIME", def.ConnMaxIdleTime),
	}
}

// Validate checks the pool settings.
func (p PoolConfig) Validate() error {
	if p.MaxOpenConns <= 0 {
		return fmt.Errorf("MaxOpenConns must be greater than 0")
	}
	if p.MaxIdleConns < 0 {
		return fmt.Errorf("MaxIdleConns must be non-negative")
	}
	if p.MaxIdleConns > p.MaxOpenConns {
		return fmt.Errorf(
			"MaxIdleConns (%d) cannot be greater than MaxOpenConns (%d)",
			p.MaxIdleConns, p.MaxOpenConns)
	}
	return nil
}
