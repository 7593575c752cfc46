// Package reconcile classifies a local migration set against a
// database-recorded one: for each distinct name, it decides whether
// the migration is Applied, Pending, Variant, or Divergent.
package reconcile

import "github.com/channdev/drift/internal/migration"

// Kind enumerates the four ways a migration can relate to the
// database's tracking table. Switches over Kind should be exhaustive;
// adding a fifth Kind is a breaking change to every consumer.
type Kind int

const (
	// Applied means the same name exists in both sets with equal hashes.
	Applied Kind = iota
	// Pending means the name exists only in the local set.
	Pending
	// Variant means the same name exists in both sets but the hashes differ.
	Variant
	// Divergent means the name exists only in the database set.
	Divergent
)

func (k Kind) String() string {
	switch k {
	case Applied:
		return "applied"
	case Pending:
		return "pending"
	case Variant:
		return "variant"
	case Divergent:
		return "divergent"
	default:
		return "unknown"
	}
}

// Matching is one classified entry, keyed by migration name. Local
// and DB hold whichever sides exist: Pending carries only Local,
// Divergent carries only DB, Applied and Variant carry both.
type Matching struct {
	Kind  Kind
	Local *migration.Migration
	DB    *migration.Migration
}

// Name is the primary key across all four variants.
func (m Matching) Name() string {
	if m.Local != nil {
		return m.Local.Name
	}
	return m.DB.Name
}

// IsReversible reports whether at least one of the underlying
// migrations carries non-empty down SQL.
func (m Matching) IsReversible() bool {
	if m.Local != nil && m.Local.Reversible() {
		return true
	}
	if m.DB != nil && m.DB.Reversible() {
		return true
	}
	return false
}

// BestDownMigration picks which side's down SQL an executor should
// run to undo this migration. For Variant it prefers whichever side
// has down SQL present, defaulting to Local when both or neither do;
// for the other three kinds it's simply the side that's held.
func (m Matching) BestDownMigration() migration.Migration {
	switch m.Kind {
	case Variant:
		if m.DB.Reversible() && !m.Local.Reversible() {
			return *m.DB
		}
		return *m.Local
	case Divergent:
		return *m.DB
	default:
		return *m.Local
	}
}

// LocalMigration returns the local side, or false for Divergent where
// no local side exists.
func (m Matching) LocalMigration() (migration.Migration, bool) {
	if m.Local == nil {
		return migration.Migration{}, false
	}
	return *m.Local, true
}

// Match joins local against db by name. Every name appearing in
// either slice produces exactly one Matching, in arbitrary order —
// callers that need name order should sort the result themselves.
func Match(local, db []migration.Migration) []Matching {
	byName := make(map[string]migration.Migration, len(local))
	for _, l := range local {
		byName[l.Name] = l
	}

	matches := make([]Matching, 0, len(local)+len(db))

	for i := range db {
		dbMigration := db[i]
		l, ok := byName[dbMigration.Name]
		if !ok {
			matches = append(matches, Matching{Kind: Divergent, DB: &db[i]})
			continue
		}
		delete(byName, dbMigration.Name)
		if l.ContentEqual(dbMigration) {
			matches = append(matches, Matching{Kind: Applied, Local: &l, DB: &db[i]})
		} else {
			matches = append(matches, Matching{Kind: Variant, Local: &l, DB: &db[i]})
		}
	}

	for i := range local {
		l := local[i]
		if _, stillPending := byName[l.Name]; stillPending {
			matches = append(matches, Matching{Kind: Pending, Local: &local[i]})
		}
	}

	return matches
}
