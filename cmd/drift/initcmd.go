/*
 * drift - Init Command
 *
 * Creates the migrations directory, the database tracking table, and
 * the bootstrap migration recording the tracking table's own creation.
 */
package main

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/channdev/drift/internal/drivers"
	"github.com/channdev/drift/internal/fsmigrations"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the migrations directory, tracking table, and bootstrap migration",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, log, err := loadContext()
	if err != nil {
		return err
	}

	loader := fsmigrations.New(cfg.MigrationsDir)
	if err := loader.EnsureDir(); err != nil {
		return err
	}

	exec, err := drivers.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return err
	}

	if err := exec.EnsureSchema(ctx); err != nil {
		return err
	}

	bootstrap, err := loader.WriteBootstrap(exec.InitUpSQL(), exec.InitDownSQL())
	if err != nil {
		return err
	}

	color.Green("  Initialized migrations directory %s, tracking table, and bootstrap migration %s.\n", cfg.MigrationsDir, bootstrap)
	log.Debugw("init complete", "dir", cfg.MigrationsDir, "bootstrap", bootstrap)
	return nil
}
