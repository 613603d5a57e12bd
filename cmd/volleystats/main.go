// Command volleystats runs the club roster API and its maintenance tasks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/config"
	"github.com/marceldopr/Volleyball-stats-definitiu/pkg/logger"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "volleystats",
	Short: "Volleystats club roster API",
	Long:  "Volleystats serves the session, navigation and roster screens of a volleyball club over HTTP.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile == "" {
			return config.LoadDotEnv()
		}
		if _, err := os.Stat(envFile); err != nil {
			return fmt.Errorf("env file: %w", err)
		}
		return config.LoadDotEnv(envFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default: .env when present)")
}

// loadConfig reads and validates the application configuration and builds
// the logger it describes.
func loadConfig() (config.Config, *zap.SugaredLogger, error) {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
