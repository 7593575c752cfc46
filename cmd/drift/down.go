/*
 * drift - Down Command
 *
 * Rolls back recent migrations, newest first, default one step.
 */
package main

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	downCount           int
	downPlan            bool
	downIgnoreDivergent bool
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back recent migrations",
	RunE:  runDown,
}

func init() {
	rootCmd.AddCommand(downCmd)
	downCmd.Flags().IntVarP(&downCount, "count", "n", 0, "number of migrations to roll back (default 1)")
	downCmd.Flags().BoolVarP(&downPlan, "plan", "p", false, "print the plan without executing it")
	downCmd.Flags().BoolVarP(&downIgnoreDivergent, "ignore-divergent", "i", false, "skip divergent migrations instead of rolling them back")
}

func runDown(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, log, err := loadContext()
	if err != nil {
		return err
	}

	exec, local, db, err := openAndLoad(ctx, cfg)
	if err != nil {
		return err
	}

	p := pipelinePlanner(local, db, downCount, false, downIgnoreDivergent, false)
	plan, err := p.Down()
	if err != nil {
		return err
	}

	if downPlan {
		printPlan(plan)
		return nil
	}

	if err := exec.RunPlan(ctx, plan); err != nil {
		return err
	}

	color.Green("  Rolled back %d migration(s).\n", len(plan))
	log.Debugw("down complete", "rolled_back", len(plan))
	return nil
}
