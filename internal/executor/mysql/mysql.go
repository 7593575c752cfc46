// Package mysql adapts the executor contract to MySQL/MariaDB via
// go-sql-driver/mysql. Not required by the reconciliation contract's
// minimum (Postgres + SQLite), but kept as a third adaptor since the
// teacher already carries this driver for its own migration CLI.
package mysql

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/channdev/drift/internal/executor"
)

var dialect = executor.Dialect{
	CreateTableSQL: fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id INT AUTO_INCREMENT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			name VARCHAR(255) NOT NULL,
			hash VARCHAR(255) NOT NULL,
			down_sql TEXT
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
	`, executor.TableName),
	DropTableSQL: fmt.Sprintf(`DROP TABLE IF EXISTS %s`, executor.TableName),
	Placeholder: func(i int) string {
		return "?"
	},
}

// Open connects to a MySQL/MariaDB database at dsn and returns an
// Executor backed by it.
func Open(dsn string) (*executor.SQLExecutor, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return executor.NewSQLExecutor(db, dialect), nil
}
