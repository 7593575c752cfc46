/*
 * drift - Fix Command
 *
 * Repairs a diverged history: rolls back everything from the
 * earliest defect onward and reapplies the local set.
 */
package main

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var fixPlan bool

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Repair a diverged migration history",
	RunE:  runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)
	fixCmd.Flags().BoolVarP(&fixPlan, "plan", "p", false, "print the plan without executing it")
}

func runFix(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, log, err := loadContext()
	if err != nil {
		return err
	}

	exec, local, db, err := openAndLoad(ctx, cfg)
	if err != nil {
		return err
	}

	plan, err := pipelinePlanner(local, db, 0, false, false, false).Fix()
	if err != nil {
		return err
	}

	if fixPlan {
		printPlan(plan)
		return nil
	}

	if err := exec.RunPlan(ctx, plan); err != nil {
		return err
	}

	color.Green("  Fixed history: %d step(s) applied.\n", len(plan))
	log.Debugw("fix complete", "steps", len(plan))
	return nil
}
