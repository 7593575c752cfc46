package migration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channdev/drift/internal/migration"
)

func TestBuilder_ComputesHashFromContent(t *testing.T) {
	m, err := migration.NewBuilder("2024-01-02-150405_create_users").
		Up("CREATE TABLE users (id serial)").
		Down("DROP TABLE users").
		Build()
	require.NoError(t, err)
	require.NotNil(t, m.Hash)
	assert.Equal(t, migration.Fingerprint(m.UpSQL, m.DownSQL), *m.Hash)
}

func TestBuilder_WithHashOverridesComputed(t *testing.T) {
	m, err := migration.NewBuilder("0001_a").WithHash("abc123").Build()
	require.NoError(t, err)
	require.NotNil(t, m.Hash)
	assert.Equal(t, "abc123", *m.Hash)
}

func TestBuilder_EmptyNameFails(t *testing.T) {
	_, err := migration.NewBuilder("").Build()
	assert.ErrorIs(t, err, migration.ErrBadMigration)
}

func TestFingerprint_PresenceVsEmptyDiffer(t *testing.T) {
	empty := ""
	absent := migration.Fingerprint(nil, nil)
	present := migration.Fingerprint(&empty, nil)
	assert.NotEqual(t, absent, present)
}

func TestFingerprint_Deterministic(t *testing.T) {
	up := "CREATE TABLE t (id int)"
	down := "DROP TABLE t"
	assert.Equal(t, migration.Fingerprint(&up, &down), migration.Fingerprint(&up, &down))
}

func TestDateAndLabel_WellFormedName(t *testing.T) {
	m, err := migration.NewBuilder("2024-01-02-150405_create_users").Build()
	require.NoError(t, err)
	assert.Equal(t, "create_users", m.Label())
	assert.Equal(t, 2024, m.Date().Year())
}

func TestDateAndLabel_MalformedNameDoesNotPanic(t *testing.T) {
	m, err := migration.NewBuilder("not-a-valid-name").Build()
	require.NoError(t, err)
	assert.True(t, m.Date().IsZero())
}

func TestNewName_RoundTripsThroughLabel(t *testing.T) {
	at, err := time.Parse(time.RFC3339, "2024-06-15T10:30:00Z")
	require.NoError(t, err)

	name := migration.NewName(at, "add_email_to_users")
	m, err := migration.NewBuilder(name).Build()
	require.NoError(t, err)
	assert.Equal(t, "add_email_to_users", m.Label())
}
