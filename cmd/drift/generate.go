/*
 * drift - Generate Command
 *
 * Scaffolds a new migration directory with empty up.sql/down.sql.
 */
package main

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/channdev/drift/internal/fsmigrations"
)

var generateCmd = &cobra.Command{
	Use:   "generate <label>",
	Short: "Scaffold a new migration",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadContextNoDB()
	if err != nil {
		return err
	}

	name, err := fsmigrations.New(cfg.MigrationsDir).Generate(time.Now(), args[0])
	if err != nil {
		return err
	}

	color.Green("  Created migration %s\n", name)
	log.Debugw("generate complete", "name", name)
	return nil
}
