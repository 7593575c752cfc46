// Package postgres adapts the executor contract to PostgreSQL via
// lib/pq, the driver the teacher already depends on.
package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/channdev/drift/internal/executor"
)

var dialect = executor.Dialect{
	CreateTableSQL: fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			created_at TIMESTAMP DEFAULT now(),
			updated_at TIMESTAMP DEFAULT now(),
			name TEXT NOT NULL,
			hash TEXT NOT NULL,
			down_sql TEXT
		)
	`, executor.TableName),
	DropTableSQL: fmt.Sprintf(`DROP TABLE IF EXISTS %s`, executor.TableName),
	Placeholder: func(i int) string {
		return fmt.Sprintf("$%d", i)
	},
}

// Open connects to a PostgreSQL database at dsn and returns an
// Executor backed by it.
func Open(dsn string) (*executor.SQLExecutor, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return executor.NewSQLExecutor(db, dialect), nil
}
