/*
 * drift - Up Command
 *
 * Applies pending migrations in date order.
 */
package main

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	upCount  int
	upPlan   bool
	upStrict bool
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE:  runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)
	upCmd.Flags().IntVarP(&upCount, "count", "n", 0, "limit the number of migrations applied (0 = all)")
	upCmd.Flags().BoolVarP(&upPlan, "plan", "p", false, "print the plan without executing it")
	upCmd.Flags().BoolVarP(&upStrict, "strict", "s", false, "fail if pending migrations precede applied ones")
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, log, err := loadContext()
	if err != nil {
		return err
	}

	exec, local, db, err := openAndLoad(ctx, cfg)
	if err != nil {
		return err
	}

	p := pipelinePlanner(local, db, upCount, upStrict, false, false)
	plan, err := p.Up()
	if err != nil {
		return err
	}

	if upPlan {
		printPlan(plan)
		return nil
	}

	if err := exec.RunPlan(ctx, plan); err != nil {
		return err
	}

	color.Green("  Applied %d migration(s).\n", len(plan))
	log.Debugw("up complete", "applied", len(plan))
	return nil
}
