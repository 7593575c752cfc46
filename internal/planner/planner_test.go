package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drifterrors "github.com/channdev/drift/internal/errors"
	"github.com/channdev/drift/internal/migration"
	"github.com/channdev/drift/internal/planner"
)

func mustBuild(t *testing.T, name string, up, down *string, hash *string) migration.Migration {
	t.Helper()
	b := migration.NewBuilder(name)
	if up != nil {
		b = b.Up(*up)
	}
	if down != nil {
		b = b.Down(*down)
	}
	if hash != nil {
		b = b.WithHash(*hash)
	}
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func str(s string) *string { return &s }

func names(entries planner.Plan) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Step.String() + " " + e.Migration.Name
	}
	return out
}

func TestUp_SimpleUp(t *testing.T) {
	local := []migration.Migration{
		mustBuild(t, "0001_a", str("create a"), nil, nil),
		mustBuild(t, "0002_b", str("create b"), nil, nil),
	}

	plan, err := planner.New(local, nil).Up()
	require.NoError(t, err)
	assert.Equal(t, []string{"up 0001_a", "up 0002_b"}, names(plan))
}

func TestUp_StrictDirty(t *testing.T) {
	local := []migration.Migration{
		mustBuild(t, "0001_a", str("create a"), nil, nil),
		mustBuild(t, "0002_b", str("create b"), nil, nil),
	}
	db := []migration.Migration{
		mustBuild(t, "0001_a", nil, nil, str(migration.Fingerprint(str("create a"), nil))),
		mustBuild(t, "0003_c", nil, nil, str("zzz")),
	}

	plan, err := planner.New(local, db).Up()
	require.NoError(t, err)
	assert.Equal(t, []string{"up 0002_b"}, names(plan))

	_, err = planner.New(local, db).WithStrict(true).Up()
	require.ErrorIs(t, err, drifterrors.ErrDirtyMigrations)
}

func TestDown_DefaultDown(t *testing.T) {
	local := []migration.Migration{
		mustBuild(t, "0001_a", str("create a"), str("drop a"), nil),
		mustBuild(t, "0002_b", str("create b"), str("drop b"), nil),
	}
	db := []migration.Migration{
		mustBuild(t, "0001_a", nil, str("drop a"), str(migration.Fingerprint(str("create a"), str("drop a")))),
		mustBuild(t, "0003_c", nil, str("drop c"), str("zzz")),
	}

	plan, err := planner.New(local, db).Down()
	require.NoError(t, err)
	assert.Equal(t, []string{"down 0003_c"}, names(plan))

	plan, err = planner.New(local, db).WithIgnoreDivergent(true).Down()
	require.NoError(t, err)
	assert.Equal(t, []string{"down 0001_a"}, names(plan))
}

func TestFix_VariantWithDivergentTail(t *testing.T) {
	local := []migration.Migration{
		mustBuild(t, "0001_a", str("create a"), str("drop a"), nil),
		mustBuild(t, "0002_b", str("create b"), str("drop b"), nil),
		mustBuild(t, "0003_c", str("create c"), str("drop c"), nil),
	}
	db := []migration.Migration{
		mustBuild(t, "0001_a", nil, str("drop a"), str(migration.Fingerprint(str("create a"), str("drop a")))),
		mustBuild(t, "0002_b", nil, str("drop b old"), str("X")),
		mustBuild(t, "0003_c", nil, str("drop c old"), str("X")),
		mustBuild(t, "0004_d", nil, str("drop d"), str("zzz")),
	}

	plan, err := planner.New(local, db).Fix()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"down 0004_d",
		"down 0003_c",
		"down 0002_b",
		"up 0002_b",
		"up 0003_c",
	}, names(plan))
}

func TestRedo_WithCount(t *testing.T) {
	local := []migration.Migration{
		mustBuild(t, "0001_a", str("create a"), str("drop a"), nil),
		mustBuild(t, "0002_b", str("create b"), str("drop b"), nil),
	}
	db := []migration.Migration{
		mustBuild(t, "0001_a", nil, str("drop a"), str(migration.Fingerprint(str("create a"), str("drop a")))),
		mustBuild(t, "0002_b", nil, str("drop b old"), str("X")),
		mustBuild(t, "0003_c", nil, str("drop c"), str("zzz")),
	}

	_, err := planner.New(local, db).WithCount(2).Redo()
	require.ErrorIs(t, err, drifterrors.ErrDivergentMigration)

	plan, err := planner.New(local, db).WithCount(2).WithIgnoreDivergent(true).Redo()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"down 0002_b",
		"down 0001_a",
		"up 0001_a",
		"up 0002_b",
	}, names(plan))
}

func TestUp_Idempotent(t *testing.T) {
	local := []migration.Migration{
		mustBuild(t, "0001_a", str("create a"), nil, nil),
	}
	hash := migration.Fingerprint(str("create a"), nil)
	db := []migration.Migration{
		mustBuild(t, "0001_a", nil, nil, &hash),
	}

	plan, err := planner.New(local, db).Up()
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestDown_StopsWhenExhausted(t *testing.T) {
	local := []migration.Migration{
		mustBuild(t, "0001_a", str("create a"), str("drop a"), nil),
	}
	hash := migration.Fingerprint(str("create a"), str("drop a"))
	db := []migration.Migration{
		mustBuild(t, "0001_a", nil, str("drop a"), &hash),
	}

	plan, err := planner.New(local, db).WithCount(5).Down()
	require.NoError(t, err)
	assert.Equal(t, []string{"down 0001_a"}, names(plan))
}
