// Package fsmigrations discovers migrations on disk and scaffolds new
// ones. Each migration is a directory named after the compound
// YYYY-MM-DD-HHMMSS_label convention, containing up.sql and down.sql.
package fsmigrations

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	drifterrors "github.com/channdev/drift/internal/errors"
	"github.com/channdev/drift/internal/migration"
)

const (
	upFilename   = "up.sql"
	downFilename = "down.sql"

	// bootstrapLabel names the migration directory init writes to
	// record the tracking schema's own creation, mirroring
	// local.rs::create_initial_migration_folder's "movine_init" folder.
	bootstrapLabel = "movine_init"
)

// Loader discovers and writes migrations under a single directory.
type Loader struct {
	dir string
}

// New returns a Loader rooted at dir.
func New(dir string) *Loader {
	return &Loader{dir: dir}
}

// EnsureDir creates the migrations directory if it doesn't exist yet,
// used by `drift init`.
func (l *Loader) EnsureDir() error {
	if _, err := os.Stat(l.dir); err == nil {
		return nil
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("create migrations directory: %w", err)
	}
	return nil
}

// Load reads every migration subdirectory into a Migration, building
// the fingerprint from the up/down SQL it finds. Migrations come back
// in directory-name order, as os.ReadDir sorts its entries.
func (l *Loader) Load() ([]migration.Migration, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, drifterrors.ErrMigrationDirNotFound
		}
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	var migrations []migration.Migration
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		dir := filepath.Join(l.dir, name)

		upSQL, err := readOptional(filepath.Join(dir, upFilename))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		downSQL, err := readOptional(filepath.Join(dir, downFilename))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		b := migration.NewBuilder(name)
		if upSQL != nil {
			b = b.Up(*upSQL)
		}
		if downSQL != nil {
			b = b.Down(*downSQL)
		}

		m, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("build migration %s: %w", name, err)
		}
		migrations = append(migrations, m)
	}

	return migrations, nil
}

// Generate scaffolds a new migration directory named after the
// current time and label, writing empty up.sql/down.sql files, and
// returns the composed name.
func (l *Loader) Generate(at time.Time, label string) (string, error) {
	name := migration.NewName(at, label)
	dir := filepath.Join(l.dir, name)

	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("create migration directory: %w", err)
	}

	for _, filename := range []string{upFilename, downFilename} {
		if err := os.WriteFile(filepath.Join(dir, filename), nil, 0o644); err != nil {
			return "", fmt.Errorf("create %s: %w", filename, err)
		}
	}

	return name, nil
}

// WriteBootstrap writes the initial migration directory recording the
// tracking table's own creation, named after the Unix epoch so it
// always sorts first and is reapplied consistently across a project's
// history. upSQL/downSQL are the dialect's init DDL, as returned by
// Executor.InitUpSQL/InitDownSQL. A pre-existing bootstrap directory
// is left untouched, so re-running init is a no-op here.
func (l *Loader) WriteBootstrap(upSQL, downSQL string) (string, error) {
	name := migration.NewName(time.Unix(0, 0), bootstrapLabel)
	dir := filepath.Join(l.dir, name)

	if _, err := os.Stat(dir); err == nil {
		return name, nil
	}

	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("create bootstrap migration directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, upFilename), []byte(upSQL), 0o644); err != nil {
		return "", fmt.Errorf("write bootstrap up sql: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, downFilename), []byte(downSQL), 0o644); err != nil {
		return "", fmt.Errorf("write bootstrap down sql: %w", err)
	}

	return name, nil
}

func readOptional(path string) (*string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	s := string(content)
	return &s, nil
}
