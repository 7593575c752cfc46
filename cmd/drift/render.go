/*
 * drift - Shared Rendering Helpers
 *
 * Colour-coded table output shared by status and the -p/--plan dry
 * run flag across up/down/fix/redo.
 */
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/channdev/drift/internal/planner"
	"github.com/channdev/drift/internal/reconcile"
	"github.com/channdev/drift/internal/status"
)

func printStatusTable(rows []status.Row) {
	if len(rows) == 0 {
		color.Yellow("  No migrations found.\n\n")
		return
	}

	fmt.Printf("  %-50s %-12s %s\n", "Migration", "State", "Reversible")
	fmt.Printf("  %s\n", strings.Repeat("-", 80))

	for _, row := range rows {
		fmt.Printf("  %-50s %-12s %s\n", row.Name, colorizeKind(row.Kind), yesNo(row.Reversible))
	}
	fmt.Println()
}

func colorizeKind(kind reconcile.Kind) string {
	switch kind {
	case reconcile.Applied:
		return color.GreenString(kind.String())
	case reconcile.Pending:
		return color.YellowString(kind.String())
	case reconcile.Variant, reconcile.Divergent:
		return color.RedString(kind.String())
	default:
		return kind.String()
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func printPlan(plan planner.Plan) {
	if len(plan) == 0 {
		color.Yellow("  Nothing to do.\n\n")
		return
	}

	for _, entry := range plan {
		arrow := color.GreenString("up  ")
		if entry.Step == planner.Down {
			arrow = color.RedString("down")
		}
		fmt.Printf("  %s  %s\n", arrow, entry.Migration.Name)
	}
	fmt.Println()
}
