package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/config"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/database"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/health"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/metrics"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/server"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/session/snapshot"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store/gormstore"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store/rest"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	deps := server.Deps{
		Checks:  map[string]health.Checker{},
		Metrics: metrics.New(),
		Logger:  log,
	}

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := openDatabase(ctx, log)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close(db) }()

		st := gormstore.New(db, log, gormstore.WithAuth(gormstore.AuthConfig{
			JWTSecret:  []byte(cfg.Store.JWTSecret),
			SessionTTL: cfg.Store.SessionTTL,
			Issuer:     "volleystats",
		}))
		deps.Client, deps.Auth, deps.Verifier = st, st, st
		deps.Checks["database"] = database.Checker(db)
	default:
		for _, w := range cfg.Store.Warnings {
			log.Warnw(w)
		}
		client := rest.New(cfg.Store.URL, cfg.Store.AnonKey, log)
		deps.Client, deps.Auth = client, client
	}

	switch cfg.Session.SnapshotBackend {
	case config.SnapshotBackendFile:
		snaps, err := snapshot.NewFile(cfg.Session.SnapshotDir)
		if err != nil {
			return fmt.Errorf("failed to open snapshot directory: %w", err)
		}
		deps.Snapshots = snaps
	case config.SnapshotBackendRedis:
		snaps, rdb, err := snapshot.NewRedisFromURL(ctx, cfg.Session.RedisURL, cfg.Session.SnapshotTTL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = rdb.Close() }()
		deps.Snapshots = snaps
		deps.Checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	default:
		deps.Snapshots = snapshot.NewMemory()
	}

	log.Infow("configuration loaded",
		"store_driver", cfg.Store.Driver,
		"snapshot_backend", cfg.Session.SnapshotBackend,
		"gin_mode", cfg.GinMode,
	)

	srv := server.New(cfg.Server, server.NewRouter(cfg, deps))
	return server.Run(ctx, srv, cfg.Server, log)
}

// openDatabase connects to PostgreSQL using the DB_* environment.
func openDatabase(ctx context.Context, log *zap.SugaredLogger) (*gorm.DB, error) {
	dbCfg := database.LoadConfigFromEnv()
	if err := dbCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	return database.Open(ctx, dbCfg, log)
}
