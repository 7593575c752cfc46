/*
 * drift - Redo Command
 *
 * Rewinds then reapplies the latest N applied/variant migrations.
 */
package main

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	redoCount           int
	redoPlan            bool
	redoIgnoreDivergent bool
)

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Rewind and reapply recent migrations",
	RunE:  runRedo,
}

func init() {
	rootCmd.AddCommand(redoCmd)
	redoCmd.Flags().IntVarP(&redoCount, "count", "n", 0, "number of migrations to redo (default 1)")
	redoCmd.Flags().BoolVarP(&redoPlan, "plan", "p", false, "print the plan without executing it")
	redoCmd.Flags().BoolVarP(&redoIgnoreDivergent, "ignore-divergent", "i", false, "skip divergent migrations instead of failing")
}

func runRedo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, log, err := loadContext()
	if err != nil {
		return err
	}

	exec, local, db, err := openAndLoad(ctx, cfg)
	if err != nil {
		return err
	}

	p := pipelinePlanner(local, db, redoCount, false, redoIgnoreDivergent, false)
	plan, err := p.Redo()
	if err != nil {
		return err
	}

	if redoPlan {
		printPlan(plan)
		return nil
	}

	if err := exec.RunPlan(ctx, plan); err != nil {
		return err
	}

	color.Green("  Redid %d migration(s).\n", len(plan)/2)
	log.Debugw("redo complete", "steps", len(plan))
	return nil
}
