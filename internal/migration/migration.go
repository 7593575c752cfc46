// Package migration defines the immutable Migration value: a named,
// date-ordered pair of up/down SQL scripts plus a content fingerprint.
//
// A Migration built from local sources (the filesystem loader) always
// carries UpSQL and Hash; DownSQL is optional. A Migration loaded from
// the database tracking table carries Hash and DownSQL (possibly ""),
// and never carries UpSQL.
package migration

import (
	"strings"
	"time"

	drifterrors "github.com/channdev/drift/internal/errors"
)

const nameDateLayout = "2006-01-02-150405"

// Migration is a single named unit of forward/backward schema change.
type Migration struct {
	Name    string
	UpSQL   *string
	DownSQL *string
	Hash    *string
}

// Reversible reports whether m carries non-empty down SQL.
func (m Migration) Reversible() bool {
	return m.DownSQL != nil && *m.DownSQL != ""
}

// ContentEqual reports whether m and other are content-equal: both
// carry a Hash and the hashes are equal. Two migrations with no hash
// on either side are never content-equal.
func (m Migration) ContentEqual(other Migration) bool {
	if m.Hash == nil || other.Hash == nil {
		return false
	}
	return *m.Hash == *other.Hash
}

// Date extracts the YYYY-MM-DD-HHMMSS prefix from Name as the
// migration's creation instant. Ordering elsewhere compares Name
// directly and does not call Date. A malformed name yields the zero
// time rather than panicking.
func (m Migration) Date() time.Time {
	datePart, _ := splitName(m.Name)
	t, err := time.Parse(nameDateLayout, datePart)
	if err != nil {
		return time.Time{}
	}
	return t
}

// splitName separates the fixed-width YYYY-MM-DD-HHMMSS date prefix
// from the trailing label. Names that don't fit the convention return
// the whole string as the date part, which then fails to parse in
// Date() and sorts as the zero time rather than panicking.
func splitName(name string) (datePart, label string) {
	fields := strings.SplitN(name, "-", 4)
	if len(fields) != 4 {
		return name, ""
	}
	rest := strings.SplitN(fields[3], "_", 2)
	if len(rest) != 2 {
		return name, ""
	}
	return strings.Join([]string{fields[0], fields[1], fields[2], rest[0]}, "-"), rest[1]
}

// Label returns the portion of Name after the date prefix.
func (m Migration) Label() string {
	_, label := splitName(m.Name)
	return label
}

// NewName composes the compound YYYY-MM-DD-HHMMSS_label name from a
// creation instant and a label, as used by generate and init.
func NewName(at time.Time, label string) string {
	return at.UTC().Format(nameDateLayout) + "_" + label
}

// optr returns a pointer to s, or nil if present is false — the Go
// stand-in for Rust's Option<String> used throughout the builder.
func optr(s string, present bool) *string {
	if !present {
		return nil
	}
	return &s
}

// ErrBadMigration re-exports the shared sentinel so callers building
// migrations don't need a second import for this one case.
var ErrBadMigration = drifterrors.ErrBadMigration

// Builder assembles a Migration field by field, mirroring the
// teacher's config builders and the original MigrationBuilder. Start
// one with NewBuilder, then call any of Up/Down/WithHash, then Build.
type Builder struct {
	name    string
	hasUp   bool
	up      string
	hasDown bool
	down    string
	hasHash bool
	hash    string
}

// NewBuilder starts a Builder for the compound name convention
// (YYYY-MM-DD-HHMMSS_label), as produced by NewName.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Up sets the migration's forward SQL.
func (b *Builder) Up(sql string) *Builder {
	b.hasUp = true
	b.up = sql
	return b
}

// Down sets the migration's reverse SQL, declaring it reversible.
func (b *Builder) Down(sql string) *Builder {
	b.hasDown = true
	b.down = sql
	return b
}

// WithHash overrides the computed fingerprint with one loaded
// verbatim from the database tracking table, bypassing Fingerprint.
func (b *Builder) WithHash(hash string) *Builder {
	b.hasHash = true
	b.hash = hash
	return b
}

// Build assembles the Migration. If no hash was supplied via WithHash
// and at least one of Up/Down was set, the hash is computed with
// Fingerprint over whichever of up/down are present. Build fails only
// when name is empty.
func (b *Builder) Build() (Migration, error) {
	if b.name == "" {
		return Migration{}, ErrBadMigration
	}

	m := Migration{
		Name:    b.name,
		UpSQL:   optr(b.up, b.hasUp),
		DownSQL: optr(b.down, b.hasDown),
	}

	switch {
	case b.hasHash:
		m.Hash = optr(b.hash, true)
	case b.hasUp || b.hasDown:
		h := Fingerprint(m.UpSQL, m.DownSQL)
		m.Hash = &h
	}

	return m, nil
}
