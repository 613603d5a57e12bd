package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(m *database.Migrator) error {
			return m.Up()
		}, "migrations applied successfully")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(m *database.Migrator) error {
			return m.Down()
		}, "migrations rolled back successfully")
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied migration version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(m *database.Migrator) error {
			v, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
			return nil
		}, "")
	},
}

func init() {
	migrateCmd.AddCommand(migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withMigrator(ctx context.Context, fn func(*database.Migrator) error, done string) error {
	_, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := openDatabase(ctx, log)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	m, err := database.NewMigrator(db, database.LoadConfigFromEnv().MigrationsPath)
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	if done != "" {
		log.Infow(done)
	}
	return nil
}
