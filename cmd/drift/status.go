/*
 * drift - Status Command
 *
 * Shows the reconciled state of every migration: applied, pending,
 * variant, or divergent.
 */
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/channdev/drift/internal/planner"
	"github.com/channdev/drift/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the reconciled state of every migration",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, log, err := loadContext()
	if err != nil {
		return err
	}

	_, local, db, err := openAndLoad(ctx, cfg)
	if err != nil {
		return err
	}
	log.Debugw("loaded migrations", "local", len(local), "db", len(db))

	matches := planner.New(local, db).Status()
	printStatusTable(status.Report(matches))

	return nil
}
