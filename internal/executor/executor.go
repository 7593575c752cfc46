// Package executor defines the contract the planner's output is
// handed to: an adaptor capable of running an ordered Plan against a
// database, recording each applied or rolled-back step in the
// movine_migrations tracking table under one transaction per step.
//
// Concrete adaptors live in the postgres, sqlite, and mysql
// subpackages; each implements Executor for its own dialect's DDL and
// placeholder syntax, so the planner and reconcile packages never
// need to know which driver is live.
package executor

import (
	"context"

	"github.com/channdev/drift/internal/migration"
	"github.com/channdev/drift/internal/planner"
)

// TableName is the tracking table's name, a wire contract fixed by
// the reconciliation protocol — never derived from configuration.
const TableName = "movine_migrations"

// Executor is the capability set a database adaptor must provide.
// InitUpSQL/InitDownSQL hand back the CREATE/DROP DDL for the
// tracking table in the driver's own dialect; LoadMigrations reads it
// back; RunPlan executes an ordered Plan, one transaction per step,
// stopping at the first error and leaving the database consistent up
// to and including the last committed step.
type Executor interface {
	InitUpSQL() string
	InitDownSQL() string
	LoadMigrations(ctx context.Context) ([]migration.Migration, error)
	RunPlan(ctx context.Context, plan planner.Plan) error

	// EnsureSchema runs InitUpSQL against the connection, creating the
	// tracking table if it doesn't already exist. Called once by
	// `drift init` and defensively by every other command before it
	// reads or writes the tracking table.
	EnsureSchema(ctx context.Context) error
}
