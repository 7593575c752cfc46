// Package config loads drift's database connection settings from
// drift.toml and environment variables, in that precedence order:
// DATABASE_URL wins outright, then driver-specific PG*/SQLITE_*/MYSQL_*
// variables, then whatever drift.toml declares.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	drifterrors "github.com/channdev/drift/internal/errors"
)

// Config is the resolved set of settings a command needs to run.
type Config struct {
	Driver        string
	DSN           string
	MigrationsDir string
}

// fileConfig mirrors drift.toml's shape: one table per supported
// driver, only one of which is expected to be populated.
type fileConfig struct {
	MigrationsDir string    `toml:"migrations_dir"`
	Postgres      *dsnTable `toml:"postgres"`
	SQLite        *dsnTable `toml:"sqlite"`
	Mysql         *dsnTable `toml:"mysql"`
}

type dsnTable struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	Path     string `toml:"path"`
}

const defaultMigrationsDir = "migrations"

// Load reads .env (if present), then path (if present), then layers
// environment variables on top per the documented precedence. path
// may be empty, in which case only environment variables and
// defaults apply.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // optional; missing .env is not an error

	cfg := &Config{MigrationsDir: defaultMigrationsDir}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if cfg.DSN == "" || cfg.Driver == "" {
		return nil, drifterrors.ErrConfigNotFound
	}

	return cfg, nil
}

// LoadMigrationsDirOnly loads just the migrations directory setting,
// for commands like generate that never touch the database. Unlike
// Load, a missing driver/DSN is not an error here.
func LoadMigrationsDirOnly(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{MigrationsDir: defaultMigrationsDir}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if dir := os.Getenv("DRIFT_MIGRATIONS_DIR"); dir != "" {
		cfg.MigrationsDir = dir
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.MigrationsDir != "" {
		cfg.MigrationsDir = fc.MigrationsDir
	}
	switch {
	case fc.Postgres != nil:
		cfg.Driver = "postgres"
		cfg.DSN = postgresDSN(fc.Postgres)
	case fc.SQLite != nil:
		cfg.Driver = "sqlite"
		cfg.DSN = fc.SQLite.Path
	case fc.Mysql != nil:
		cfg.Driver = "mysql"
		cfg.DSN = mysqlDSN(fc.Mysql)
	}

	return nil
}

func postgresDSN(t *dsnTable) string {
	port := t.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		t.Host, port, t.User, t.Password, t.Database)
}

func mysqlDSN(t *dsnTable) string {
	port := t.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", t.User, t.Password, t.Host, port, t.Database)
}

// applyEnv layers environment variables over whatever drift.toml (or
// its absence) produced. DATABASE_URL, when set, overrides driver and
// DSN outright: it's assumed to carry its own driver scheme.
func applyEnv(cfg *Config) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DSN = url
		cfg.Driver = driverFromURL(url)
		return
	}

	if path := os.Getenv("SQLITE_PATH"); path != "" {
		cfg.Driver = "sqlite"
		cfg.DSN = path
	}

	pgHost := os.Getenv("PGHOST")
	pgDB := os.Getenv("PGDATABASE")
	if pgHost != "" || pgDB != "" {
		cfg.Driver = "postgres"
		cfg.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			envOr("PGHOST", "localhost"),
			envOr("PGPORT", "5432"),
			envOr("PGUSER", "postgres"),
			os.Getenv("PGPASSWORD"),
			pgDB,
		)
	}

	myHost := os.Getenv("MYSQL_HOST")
	myDB := os.Getenv("MYSQL_DATABASE")
	if myHost != "" || myDB != "" {
		cfg.Driver = "mysql"
		cfg.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s",
			envOr("MYSQL_USER", "root"),
			os.Getenv("MYSQL_PASSWORD"),
			envOr("MYSQL_HOST", "localhost"),
			envOr("MYSQL_PORT", "3306"),
			myDB,
		)
	}

	if dir := os.Getenv("DRIFT_MIGRATIONS_DIR"); dir != "" {
		cfg.MigrationsDir = dir
	}
}

func driverFromURL(url string) string {
	switch {
	case len(url) >= 8 && url[:8] == "postgres":
		return "postgres"
	case len(url) >= 6 && url[:6] == "sqlite":
		return "sqlite"
	case len(url) >= 5 && url[:5] == "mysql":
		return "mysql"
	default:
		return ""
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
