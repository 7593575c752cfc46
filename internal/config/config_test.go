package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverFromURL(t *testing.T) {
	assert.Equal(t, "postgres", driverFromURL("postgres://user@host/db"))
	assert.Equal(t, "sqlite", driverFromURL("sqlite:///tmp/db.sqlite"))
	assert.Equal(t, "mysql", driverFromURL("mysql://user@host/db"))
	assert.Equal(t, "", driverFromURL("redis://host"))
}

func TestPostgresDSN_DefaultsPort(t *testing.T) {
	dsn := postgresDSN(&dsnTable{Host: "localhost", User: "u", Password: "p", Database: "d"})
	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=d sslmode=disable", dsn)
}

func TestPostgresDSN_ExplicitPort(t *testing.T) {
	dsn := postgresDSN(&dsnTable{Host: "db.internal", Port: 6543, User: "u", Password: "p", Database: "d"})
	assert.Equal(t, "host=db.internal port=6543 user=u password=p dbname=d sslmode=disable", dsn)
}

func TestLoadFile_PostgresTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drift.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
migrations_dir = "db/migrations"

[postgres]
host = "localhost"
user = "drift"
password = "secret"
database = "app"
`), 0o644))

	cfg := &Config{MigrationsDir: defaultMigrationsDir}
	require.NoError(t, loadFile(path, cfg))

	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.Equal(t, "postgres", cfg.Driver)
	assert.Contains(t, cfg.DSN, "dbname=app")
}

func TestMysqlDSN_DefaultsPort(t *testing.T) {
	dsn := mysqlDSN(&dsnTable{Host: "localhost", User: "u", Password: "p", Database: "d"})
	assert.Equal(t, "u:p@tcp(localhost:3306)/d", dsn)
}

func TestLoadFile_MysqlTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drift.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[mysql]
host = "localhost"
port = 3307
user = "drift"
password = "secret"
database = "app"
`), 0o644))

	cfg := &Config{MigrationsDir: defaultMigrationsDir}
	require.NoError(t, loadFile(path, cfg))

	assert.Equal(t, "mysql", cfg.Driver)
	assert.Equal(t, "drift:secret@tcp(localhost:3307)/app", cfg.DSN)
}

func TestApplyEnv_MysqlHostSelectsMysqlDriver(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "SQLITE_PATH", "PGHOST", "PGDATABASE"} {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_DATABASE", "app")
	t.Setenv("MYSQL_USER", "drift")
	t.Setenv("MYSQL_PASSWORD", "secret")

	cfg := &Config{MigrationsDir: defaultMigrationsDir}
	applyEnv(cfg)

	assert.Equal(t, "mysql", cfg.Driver)
	assert.Equal(t, "drift:secret@tcp(db.internal:3306)/app", cfg.DSN)
}

func TestLoadFile_MissingFileIsNotAnError(t *testing.T) {
	cfg := &Config{MigrationsDir: defaultMigrationsDir}
	require.NoError(t, loadFile(filepath.Join(t.TempDir(), "absent.toml"), cfg))
	assert.Equal(t, defaultMigrationsDir, cfg.MigrationsDir)
}

func TestLoad_NoConfigNoEnvFails(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "SQLITE_PATH", "PGHOST", "PGDATABASE"} {
		require.NoError(t, os.Unsetenv(key))
	}

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Driver)
	assert.Equal(t, "postgres://user@host/db", cfg.DSN)
}
