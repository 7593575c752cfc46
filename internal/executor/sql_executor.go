package executor

import (
	"context"
	"database/sql"
	"fmt"

	drifterrors "github.com/channdev/drift/internal/errors"
	"github.com/channdev/drift/internal/migration"
	"github.com/channdev/drift/internal/planner"
)

// Dialect captures the handful of things that differ between
// database/sql drivers for an otherwise identical execution strategy:
// the tracking table's DDL and the placeholder syntax for bound
// parameters. Each subpackage (postgres, sqlite, mysql) supplies one.
type Dialect struct {
	// CreateTableSQL is the CREATE TABLE IF NOT EXISTS statement for
	// the tracking table, per spec.md's §4.3.1 per-dialect schema.
	CreateTableSQL string
	// DropTableSQL tears the tracking table down, exposed via
	// InitDownSQL; init writes it as the bootstrap migration's
	// down.sql.
	DropTableSQL string
	// Placeholder returns the bound-parameter token for the i'th
	// argument (1-indexed), e.g. "$1" for postgres, "?" for the rest.
	Placeholder func(i int) string
}

// SQLExecutor implements Executor over any database/sql driver, given
// a Dialect for its DDL and placeholder syntax. It is the shared core
// behind the postgres, sqlite, and mysql adaptors: each opens its own
// driver-specific *sql.DB and wraps it in a SQLExecutor configured
// with its own Dialect, so the transaction-per-step execution
// strategy itself is written once.
type SQLExecutor struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLExecutor wraps an already-opened *sql.DB with the given
// dialect. Callers (the per-driver constructors) own the *sql.DB's
// lifetime.
func NewSQLExecutor(db *sql.DB, dialect Dialect) *SQLExecutor {
	return &SQLExecutor{db: db, dialect: dialect}
}

// InitUpSQL returns the tracking table's CREATE DDL.
func (e *SQLExecutor) InitUpSQL() string { return e.dialect.CreateTableSQL }

// InitDownSQL returns the tracking table's DROP DDL.
func (e *SQLExecutor) InitDownSQL() string { return e.dialect.DropTableSQL }

// EnsureSchema runs the tracking table's CREATE DDL.
func (e *SQLExecutor) EnsureSchema(ctx context.Context) error {
	if _, err := e.db.ExecContext(ctx, e.dialect.CreateTableSQL); err != nil {
		return fmt.Errorf("ensure tracking table: %w", err)
	}
	return nil
}

// LoadMigrations reads the tracking table, newest first. The planner
// re-sorts by name before using the result, so this ordering is not a
// contract the caller should rely on.
func (e *SQLExecutor) LoadMigrations(ctx context.Context) ([]migration.Migration, error) {
	query := fmt.Sprintf(`SELECT name, hash, down_sql FROM %s ORDER BY created_at DESC`, TableName)

	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	defer rows.Close()

	var out []migration.Migration
	for rows.Next() {
		var name, hash string
		var downSQL sql.NullString
		if err := rows.Scan(&name, &hash, &downSQL); err != nil {
			return nil, fmt.Errorf("scan tracking row: %w", err)
		}

		b := migration.NewBuilder(name).WithHash(hash)
		if downSQL.Valid {
			b = b.Down(downSQL.String)
		}
		m, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("build tracked migration %s: %w", name, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// RunPlan executes each step of plan in order, one transaction per
// step, stopping at the first error. Everything committed before the
// failing step stays committed — RunPlan never attempts to unwind a
// prior step.
func (e *SQLExecutor) RunPlan(ctx context.Context, plan planner.Plan) error {
	for _, entry := range plan {
		var err error
		switch entry.Step {
		case planner.Up:
			err = e.runUp(ctx, entry.Migration)
		case planner.Down:
			err = e.runDown(ctx, entry.Migration)
		}
		if err != nil {
			return fmt.Errorf("%s %s: %w", entry.Step, entry.Migration.Name, err)
		}
	}
	return nil
}

func (e *SQLExecutor) runUp(ctx context.Context, m migration.Migration) error {
	if m.UpSQL == nil {
		return drifterrors.ErrBadMigration
	}

	return e.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, *m.UpSQL); err != nil {
			return fmt.Errorf("execute up sql: %w", err)
		}

		hash := m.Hash
		if hash == nil {
			computed := migration.Fingerprint(m.UpSQL, m.DownSQL)
			hash = &computed
		}
		down := ""
		if m.DownSQL != nil {
			down = *m.DownSQL
		}

		query := fmt.Sprintf(
			`INSERT INTO %s (name, hash, down_sql) VALUES (%s, %s, %s)`,
			TableName, e.dialect.Placeholder(1), e.dialect.Placeholder(2), e.dialect.Placeholder(3),
		)
		if _, err := tx.ExecContext(ctx, query, m.Name, *hash, down); err != nil {
			return fmt.Errorf("record migration: %w", err)
		}
		return nil
	})
}

func (e *SQLExecutor) runDown(ctx context.Context, m migration.Migration) error {
	if m.DownSQL == nil || *m.DownSQL == "" {
		return drifterrors.ErrUnrollbackableMigration
	}

	return e.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, *m.DownSQL); err != nil {
			return fmt.Errorf("execute down sql: %w", err)
		}

		query := fmt.Sprintf(`DELETE FROM %s WHERE name = %s`, TableName, e.dialect.Placeholder(1))
		if _, err := tx.ExecContext(ctx, query, m.Name); err != nil {
			return fmt.Errorf("delete tracking row: %w", err)
		}
		return nil
	})
}

func (e *SQLExecutor) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
