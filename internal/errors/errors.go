// Package errors defines the sentinel error values surfaced by drift's
// reconciliation core. Callers compare against these with errors.Is.
// Sites that concern a specific migration wrap the sentinel with
// fmt.Errorf("...: %w", ...) to carry its name; the others return it
// bare.
package errors

import "errors"

var (
	// ErrBadMigration means a Migration is missing a field required for
	// the operation being attempted (e.g. no UpSQL on an Up step).
	ErrBadMigration = errors.New("bad migration")

	// ErrDirtyMigrations means a strict Up found a Pending migration
	// preceding an already-applied one.
	ErrDirtyMigrations = errors.New("dirty migrations: pending migration precedes an applied one")

	// ErrDivergentMigration means a Redo, without IgnoreDivergent, walked
	// into a migration recorded in the database but absent locally.
	ErrDivergentMigration = errors.New("divergent migration encountered")

	// ErrUnrollbackableMigration means a Down step would target a
	// migration with no down SQL.
	ErrUnrollbackableMigration = errors.New("migration has no down SQL")

	// ErrMigrationDirNotFound means the configured migrations directory
	// does not exist.
	ErrMigrationDirNotFound = errors.New("migrations directory not found")

	// ErrConfigNotFound means no configuration file or environment
	// variables could be located.
	ErrConfigNotFound = errors.New("configuration not found")

	// ErrAdaptorNotFound means the configured driver name has no
	// registered executor adaptor.
	ErrAdaptorNotFound = errors.New("no adaptor for driver")
)

// Is reports whether err wraps target, per errors.Is semantics. Kept
// as a thin re-export so callers need only import this package when
// checking drift's own sentinels.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
