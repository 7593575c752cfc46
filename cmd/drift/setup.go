/*
 * drift - Command Setup Helpers
 *
 * Shared wiring used by every planning subcommand: open the
 * configured driver, ensure the tracking table exists, and load both
 * migration sets.
 */
package main

import (
	"context"
	"fmt"

	"github.com/channdev/drift/internal/config"
	"github.com/channdev/drift/internal/drivers"
	"github.com/channdev/drift/internal/executor"
	"github.com/channdev/drift/internal/fsmigrations"
	"github.com/channdev/drift/internal/migration"
	"github.com/channdev/drift/internal/planner"
)

// pipelinePlanner builds a Planner over local/db with the flags
// common across up/down/fix/redo. count <= 0 means "unset" — the
// planner falls back to its own per-command default.
func pipelinePlanner(local, db []migration.Migration, count int, strict, ignoreDivergent, ignoreUnreversible bool) *planner.Planner {
	p := planner.New(local, db).
		WithStrict(strict).
		WithIgnoreDivergent(ignoreDivergent).
		WithIgnoreUnreversible(ignoreUnreversible)
	if count > 0 {
		p = p.WithCount(count)
	}
	return p
}

// openAndLoad connects to the configured database, ensures the
// tracking table exists, and returns both migration sets plus the
// executor to run a plan against.
func openAndLoad(ctx context.Context, cfg *config.Config) (executor.Executor, []migration.Migration, []migration.Migration, error) {
	exec, err := drivers.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect: %w", err)
	}

	if err := exec.EnsureSchema(ctx); err != nil {
		return nil, nil, nil, err
	}

	local, err := fsmigrations.New(cfg.MigrationsDir).Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load local migrations: %w", err)
	}

	db, err := exec.LoadMigrations(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load tracked migrations: %w", err)
	}

	return exec, local, db, nil
}
