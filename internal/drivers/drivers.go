// Package drivers resolves a configured driver name to a concrete
// executor.Executor, wiring together the postgres/sqlite/mysql
// adaptors behind one entry point so cmd/drift doesn't need to know
// the adaptor packages exist.
package drivers

import (
	"fmt"

	drifterrors "github.com/channdev/drift/internal/errors"
	"github.com/channdev/drift/internal/executor"
	"github.com/channdev/drift/internal/executor/mysql"
	"github.com/channdev/drift/internal/executor/postgres"
	"github.com/channdev/drift/internal/executor/sqlite"
)

// Names of the supported driver values, as resolved by the config
// package from drift.toml or the environment.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
	MySQL    = "mysql"
)

// Open resolves driver to an adaptor and connects it to dsn.
func Open(driver, dsn string) (executor.Executor, error) {
	switch driver {
	case Postgres:
		return postgres.Open(dsn)
	case SQLite:
		return sqlite.Open(dsn)
	case MySQL:
		return mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("%s: %w", driver, drifterrors.ErrAdaptorNotFound)
	}
}
