// Package planner consumes a classified, sorted Matching set and a
// command's parameters and emits an ordered Plan of Up/Down steps.
// Planner is configured with a fluent Builder-style API; each command
// (Status, Up, Down, Fix, Redo) reads only the options relevant to it.
package planner

import (
	"fmt"

	drifterrors "github.com/channdev/drift/internal/errors"
	"github.com/channdev/drift/internal/migration"
	"github.com/channdev/drift/internal/reconcile"
)

// Step is the direction a single plan entry runs a migration's SQL.
type Step int

const (
	// Up applies a migration's forward SQL.
	Up Step = iota
	// Down applies a migration's reverse SQL.
	Down
)

func (s Step) String() string {
	if s == Up {
		return "up"
	}
	return "down"
}

// Entry is one step of a Plan: a direction paired with the migration
// whose SQL the executor must run for that step.
type Entry struct {
	Step      Step
	Migration migration.Migration
}

// Plan is the ordered output of a planner operation, ready to be
// handed to an executor. A Plan holds copied Migration values rather
// than references into the caller's slices or the Matching slice it
// was built from, so it may outlive both.
type Plan []Entry

// Planner is built once per invocation from local/db migration sets
// and optional parameters, then asked to produce a Status, Up, Down,
// Fix, or Redo plan. A single Planner should only be asked to produce
// one plan; build a new one per command invocation.
type Planner struct {
	local []migration.Migration
	db    []migration.Migration

	count              *int
	strict             bool
	ignoreDivergent    bool
	ignoreUnreversible bool
}

// New builds a Planner over the given local and database migration
// sets. All plan-producing operations compute matches by classifying
// and sorting these exactly once.
func New(local, db []migration.Migration) *Planner {
	return &Planner{local: local, db: db}
}

// WithCount caps the number of primary operations a command performs;
// see each operation's doc comment for exactly what it counts.
func (p *Planner) WithCount(count int) *Planner {
	p.count = &count
	return p
}

// WithStrict enables Up's dirty-history check.
func (p *Planner) WithStrict(strict bool) *Planner {
	p.strict = strict
	return p
}

// WithIgnoreDivergent makes Down and Redo skip Divergent matchings
// instead of treating them as a defect.
func (p *Planner) WithIgnoreDivergent(ignore bool) *Planner {
	p.ignoreDivergent = ignore
	return p
}

// WithIgnoreUnreversible makes a Down step that would otherwise fail
// on a non-reversible migration skip it instead.
func (p *Planner) WithIgnoreUnreversible(ignore bool) *Planner {
	p.ignoreUnreversible = ignore
	return p
}

// matches classifies and sorts the planner's inputs. Every operation
// calls this exactly once.
func (p *Planner) matches() []reconcile.Matching {
	m := reconcile.Match(p.local, p.db)
	reconcile.SortByName(m)
	return m
}

// Status returns the sorted classification unchanged; no plan is
// produced. Used by the status reporter.
func (p *Planner) Status() []reconcile.Matching {
	return p.matches()
}

// Up applies pending migrations in date order. If WithCount was set,
// at most that many Up steps are appended (scanning continues past
// the cap only to detect dirty history). If WithStrict was set and a
// Pending matching is found to precede a non-Pending one, Up fails
// with ErrDirtyMigrations rather than returning a plan.
func (p *Planner) Up() (Plan, error) {
	matches := p.matches()

	plan := Plan{}
	pendingFound := false
	dirty := false

	for _, m := range matches {
		if m.Kind == reconcile.Pending {
			pendingFound = true
			if p.count != nil && len(plan) == *p.count {
				continue
			}
			local, _ := m.LocalMigration()
			plan = append(plan, Entry{Step: Up, Migration: local})
			continue
		}
		if pendingFound {
			dirty = true
		}
	}

	if p.strict && dirty {
		return nil, drifterrors.ErrDirtyMigrations
	}

	return plan, nil
}

// Down rolls back recent migrations, newest first, stopping once
// WithCount steps have been produced (default 1). A Divergent
// matching is rolled back unless WithIgnoreDivergent was set, in
// which case it's skipped. An Applied or Variant matching is rolled
// back via its BestDownMigration if reversible; if not, Down fails
// with ErrUnrollbackableMigration unless WithIgnoreUnreversible was
// set. Pending matchings are always skipped. If the reverse scan
// runs out of candidates before reaching the limit, Down simply
// returns the shorter plan rather than failing.
func (p *Planner) Down() (Plan, error) {
	matches := p.matches()
	limit := 1
	if p.count != nil {
		limit = *p.count
	}

	plan := Plan{}

	for i := len(matches) - 1; i >= 0 && len(plan) < limit; i-- {
		m := matches[i]
		switch m.Kind {
		case reconcile.Divergent:
			if p.ignoreDivergent {
				continue
			}
			plan = append(plan, Entry{Step: Down, Migration: m.BestDownMigration()})
		case reconcile.Applied, reconcile.Variant:
			if m.IsReversible() {
				plan = append(plan, Entry{Step: Down, Migration: m.BestDownMigration()})
				continue
			}
			if p.ignoreUnreversible {
				continue
			}
			return nil, fmt.Errorf("%s: %w", m.Name(), drifterrors.ErrUnrollbackableMigration)
		case reconcile.Pending:
			continue
		}
	}

	return plan, nil
}

// Fix restores a coherent history once a defect (any Variant,
// Divergent, or Pending) has been seen: it rolls back everything
// from the earliest defect onward and reapplies every local
// migration from that point on, leaving the database equal to the
// local set by names and hashes, assuming executor success. A
// defect that is not reversible fails the whole operation with
// ErrUnrollbackableMigration.
func (p *Planner) Fix() (Plan, error) {
	matches := p.matches()

	defectFound := false
	var rollbackRev Plan
	var rollup Plan

	for _, m := range matches {
		switch m.Kind {
		case reconcile.Divergent:
			defectFound = true
			if !m.IsReversible() {
				return nil, fmt.Errorf("%s: %w", m.Name(), drifterrors.ErrUnrollbackableMigration)
			}
			rollbackRev = append(rollbackRev, Entry{Step: Down, Migration: m.BestDownMigration()})
		case reconcile.Variant:
			defectFound = true
			if !m.IsReversible() {
				return nil, fmt.Errorf("%s: %w", m.Name(), drifterrors.ErrUnrollbackableMigration)
			}
			local, _ := m.LocalMigration()
			rollbackRev = append(rollbackRev, Entry{Step: Down, Migration: m.BestDownMigration()})
			rollup = append(rollup, Entry{Step: Up, Migration: local})
		case reconcile.Applied:
			if !defectFound {
				continue
			}
			if !m.IsReversible() {
				return nil, fmt.Errorf("%s: %w", m.Name(), drifterrors.ErrUnrollbackableMigration)
			}
			local, _ := m.LocalMigration()
			rollbackRev = append(rollbackRev, Entry{Step: Down, Migration: m.BestDownMigration()})
			rollup = append(rollup, Entry{Step: Up, Migration: local})
		case reconcile.Pending:
			defectFound = true
			local, _ := m.LocalMigration()
			rollup = append(rollup, Entry{Step: Up, Migration: local})
		}
	}

	plan := make(Plan, 0, len(rollbackRev)+len(rollup))
	for i := len(rollbackRev) - 1; i >= 0; i-- {
		plan = append(plan, rollbackRev[i])
	}
	plan = append(plan, rollup...)

	return plan, nil
}

// Redo rewinds then reapplies the latest N (WithCount, default 1)
// applied or variant migrations. A Divergent matching encountered
// during the reverse scan fails the operation with
// ErrDivergentMigration unless WithIgnoreDivergent was set, in which
// case it's skipped. Pending matchings are skipped. A non-reversible
// Applied/Variant matching fails with ErrUnrollbackableMigration.
func (p *Planner) Redo() (Plan, error) {
	matches := p.matches()
	n := 1
	if p.count != nil {
		n = *p.count
	}

	var rollback Plan
	var rollupRev Plan

	for i := len(matches) - 1; i >= 0 && len(rollback) < n; i-- {
		m := matches[i]
		switch m.Kind {
		case reconcile.Divergent:
			if p.ignoreDivergent {
				continue
			}
			return nil, fmt.Errorf("%s: %w", m.Name(), drifterrors.ErrDivergentMigration)
		case reconcile.Applied, reconcile.Variant:
			if !m.IsReversible() {
				return nil, fmt.Errorf("%s: %w", m.Name(), drifterrors.ErrUnrollbackableMigration)
			}
			local, _ := m.LocalMigration()
			rollback = append(rollback, Entry{Step: Down, Migration: m.BestDownMigration()})
			rollupRev = append(rollupRev, Entry{Step: Up, Migration: local})
		case reconcile.Pending:
			continue
		}
	}

	plan := make(Plan, 0, len(rollback)+len(rollupRev))
	plan = append(plan, rollback...)
	for i := len(rollupRev) - 1; i >= 0; i-- {
		plan = append(plan, rollupRev[i])
	}

	return plan, nil
}
