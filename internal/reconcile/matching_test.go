package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channdev/drift/internal/migration"
	"github.com/channdev/drift/internal/reconcile"
)

func build(t *testing.T, name string, up, down *string) migration.Migration {
	t.Helper()
	b := migration.NewBuilder(name)
	if up != nil {
		b = b.Up(*up)
	}
	if down != nil {
		b = b.Down(*down)
	}
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func str(s string) *string { return &s }

func TestMatch_EmptyDB_AllPending(t *testing.T) {
	local := []migration.Migration{
		build(t, "0001_a", str("create a"), nil),
		build(t, "0002_b", str("create b"), nil),
	}

	matches := reconcile.Match(local, nil)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, reconcile.Pending, m.Kind)
	}
}

func TestMatch_AppliedWhenHashesMatch(t *testing.T) {
	up := str("create a")
	hash := migration.Fingerprint(up, nil)
	local := []migration.Migration{build(t, "0001_a", up, nil)}
	db := []migration.Migration{
		func() migration.Migration {
			m, err := migration.NewBuilder("0001_a").WithHash(hash).Build()
			require.NoError(t, err)
			return m
		}(),
	}

	matches := reconcile.Match(local, db)
	require.Len(t, matches, 1)
	assert.Equal(t, reconcile.Applied, matches[0].Kind)
}

func TestMatch_VariantWhenHashMissingOnEitherSide(t *testing.T) {
	localMigration, err := migration.NewBuilder("0001_a").Build()
	require.NoError(t, err)
	dbMigration, err := migration.NewBuilder("0001_a").Build()
	require.NoError(t, err)

	matches := reconcile.Match([]migration.Migration{localMigration}, []migration.Migration{dbMigration})
	require.Len(t, matches, 1)
	assert.Equal(t, reconcile.Variant, matches[0].Kind)
}

func TestMatch_DivergentWhenOnlyInDB(t *testing.T) {
	db := []migration.Migration{build(t, "0001_a", nil, nil)}

	matches := reconcile.Match(nil, db)
	require.Len(t, matches, 1)
	assert.Equal(t, reconcile.Divergent, matches[0].Kind)
	_, ok := matches[0].LocalMigration()
	assert.False(t, ok)
}

func TestMatch_OneEntryPerDistinctName(t *testing.T) {
	local := []migration.Migration{
		build(t, "0001_a", str("x"), nil),
		build(t, "0002_b", str("y"), nil),
	}
	db := []migration.Migration{
		build(t, "0001_a", nil, nil),
		build(t, "0003_c", nil, nil),
	}

	matches := reconcile.Match(local, db)
	assert.Len(t, matches, 3)

	seen := make(map[string]bool)
	for _, m := range matches {
		assert.False(t, seen[m.Name()], "name %s appeared twice", m.Name())
		seen[m.Name()] = true
	}
}

func TestBestDownMigration_PrefersSideWithDownSQL(t *testing.T) {
	local := build(t, "0001_a", str("create a"), nil)
	db := build(t, "0001_a", nil, str("drop a"))

	m := reconcile.Matching{Kind: reconcile.Variant, Local: &local, DB: &db}
	assert.True(t, m.IsReversible())
	assert.Equal(t, "drop a", *m.BestDownMigration().DownSQL)
}
