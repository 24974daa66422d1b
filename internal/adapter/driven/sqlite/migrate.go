package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Schema: history_entries and history_results hold the generation history,
// favorites holds saved credentials and app_settings holds the settings
// key/value pairs together with the generated counter.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	// migrationsTable records the applied schema version.
	migrationsTable = "genpass_schema_migrations"

	// LatestSchemaVersion is the version of the newest embedded migration.
	LatestSchemaVersion uint = 3
)

// ErrDirtySchema reports a migration that failed part way and needs manual repair.
var ErrDirtySchema = errors.New("genpass schema is dirty")

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open genpass migrations: %w", err)
	}

	dbDriver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return nil, fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// RunMigrations brings the history, favorites and settings tables up to
// LatestSchemaVersion. Already-applied migrations are skipped, so it runs on
// every startup.
func RunMigrations(db *sql.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		var dirty migrate.ErrDirty
		if errors.As(err, &dirty) {
			return fmt.Errorf("%w at version %d", ErrDirtySchema, dirty.Version)
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// SchemaVersion returns the applied schema version, or 0 for a database that
// has never been migrated.
func SchemaVersion(db *sql.DB) (uint, error) {
	m, err := newMigrator(db)
	if err != nil {
		return 0, err
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return version, fmt.Errorf("%w at version %d", ErrDirtySchema, version)
	}
	return version, nil
}
