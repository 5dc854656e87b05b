package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/gym-rutinas/internal/config"
	"github.com/JaimeStill/gym-rutinas/pkg/database"
	"github.com/JaimeStill/gym-rutinas/pkg/lifecycle"
	"github.com/JaimeStill/gym-rutinas/pkg/logging"
)

var (
	cfg *config.Config
	lc  *lifecycle.Coordinator
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Schema migrations and demo data for the routines service",
	Long: `Seed manages the routines database outside the running service.

It reads config.toml (plus config.<SERVICE_ENV>.toml and DATABASE_* overrides)
from the working directory, the same way the server does.

  $ seed migrate up           # apply pending migrations
  $ seed migrate version      # show the schema version
  $ seed list                 # list registered seeders
  $ seed run rutinas          # run one seeder
  $ seed all                  # run every seeder in one transaction`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if lc != nil {
			return lc.Shutdown(cfg.ShutdownTimeoutDuration())
		}
		return nil
	},
}

// connect starts the database system, which applies pending migrations
// when auto_migrate is enabled, and returns its pool.
func connect() (*sql.DB, error) {
	logger := logging.New(&cfg.Logging, "command", "seed")

	sys, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	lc = lifecycle.New()
	if err := sys.Start(lc); err != nil {
		return nil, err
	}
	return sys.Connection(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
