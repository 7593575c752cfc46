/*
 * drift - Root Command
 *
 * Defines the root command for the drift CLI. All subcommands attach
 * to this root and inherit its persistent --config/-v flags.
 */
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/channdev/drift/internal/config"
	"github.com/channdev/drift/internal/logger"
)

var (
	cfgFile string
	verbose bool
)

/*
 * rootCmd represents the base command when called without any subcommands.
 */
var rootCmd = &cobra.Command{
	Use:   "drift",
	Short: "drift - database schema migration reconciliation",
	Long: `drift reconciles a local set of schema migrations against the
set recorded in a database, and derives the ordered plan of steps
needed to bring one into line with the other.

Usage:
  drift status               Show the reconciled state of every migration
  drift up                   Apply pending migrations
  drift down                 Roll back recent migrations
  drift fix                  Repair a diverged history
  drift redo                 Rewind and reapply recent migrations
  drift generate <label>     Scaffold a new migration
  drift init                 Create the migrations directory, tracking table, and bootstrap migration`,
	Version: "0.1.0",
}

/*
 * Execute runs the root command; called by main().
 */
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "drift.toml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

/*
 * loadContext loads configuration and builds a logger shared by every
 * subcommand's RunE.
 */
func loadContext() (*config.Config, *logger.Logger, error) {
	log := logger.New(verbose)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, log, fmt.Errorf("load config: %w", err)
	}

	return cfg, log, nil
}

/*
 * loadContextNoDB loads only the migrations-directory setting, for
 * commands that never open a database connection (generate).
 */
func loadContextNoDB() (*config.Config, *logger.Logger, error) {
	log := logger.New(verbose)

	cfg, err := config.LoadMigrationsDirOnly(cfgFile)
	if err != nil {
		return nil, log, fmt.Errorf("load config: %w", err)
	}

	return cfg, log, nil
}
