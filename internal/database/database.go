package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/marceldopr/Volleyball-stats-definitiu/pkg/retry"
)

// Open connects to PostgreSQL, retrying transient failures while the server
// starts, and applies the pool settings.
func Open(ctx context.Context, cfg Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	retryCfg := cfg.Retry
	if retryCfg.MaxAttempts == 0 {
		retryCfg = retry.PostgresConfig()
	}
	retryCfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		logger.Warnw("database not ready, retrying",
			"attempt", attempt,
			"delay", delay,
			"error", cfg.SanitizeError(err),
		)
	}

	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Warn),
		})
		if err != nil {
			return nil, err
		}
		if err := HealthCheck(ctx, db); err != nil {
			_ = Close(db)
			return nil, err
		}
		return db, nil
	})
	if err != nil {
		return nil, cfg.SanitizeError(err)
	}

	if err := SetupConnectionPool(db, cfg.Pool); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	logger.Infow("connected to database", "host", cfg.Host, "db", cfg.DBName)
	return db, nil
}

// SetupConnectionPool applies pool settings to db.
func SetupConnectionPool(db *gorm.DB, pool PoolConfig) error {
	if err := pool.Validate(); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(pool.ConnMaxIdleTime)
	return nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Checker adapts HealthCheck to the health endpoint.
func Checker(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return HealthCheck(ctx, db)
	}
}

// Close gracefully closes database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
