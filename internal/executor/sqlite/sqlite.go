// Package sqlite adapts the executor contract to SQLite via
// mattn/go-sqlite3.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/channdev/drift/internal/executor"
)

var dialect = executor.Dialect{
	CreateTableSQL: fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			name TEXT NOT NULL,
			hash TEXT NOT NULL,
			down_sql TEXT
		)
	`, executor.TableName),
	DropTableSQL: fmt.Sprintf(`DROP TABLE IF EXISTS %s`, executor.TableName),
	Placeholder: func(i int) string {
		return "?"
	},
}

// Open opens a SQLite database at path (a file path, or ":memory:")
// and returns an Executor backed by it.
func Open(path string) (*executor.SQLExecutor, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return executor.NewSQLExecutor(db, dialect), nil
}
