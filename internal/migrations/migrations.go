// Package migrations owns the profiles/events schema and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var schemaFiles embed.FS

// migrationsTable keeps Horizon's version marker apart from other tools sharing the database.
const migrationsTable = "horizon_schema_migrations"

// RunMigrations brings the profiles and events tables up to date.
// With autoMigrate off it only reports the recorded version, and a dirty
// marker is an error.
func RunMigrations(db *sql.DB, autoMigrate bool) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	version, dirty, err := schemaVersion(m)
	if err != nil {
		return err
	}

	if !autoMigrate {
		if dirty {
			return fmt.Errorf("schema version %d is dirty and database.auto_migrate is off", version)
		}
		slog.Info("[Migrations] Auto-migration disabled, schema left as is", "schema_version", version)
		return nil
	}

	if dirty {
		if err := rewindDirty(m, version); err != nil {
			return err
		}
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("[Migrations] Profiles/events schema is current", "schema_version", version)
			return nil
		}
		return fmt.Errorf("failed to apply schema migrations: %w", err)
	}

	applied, _, err := schemaVersion(m)
	if err != nil {
		return err
	}
	slog.Info("[Migrations] Profiles/events schema migrated", "from_version", version, "to_version", applied)
	return nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(schemaFiles, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded schema files: %w", err)
	}

	target, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return nil, fmt.Errorf("failed to attach migrator to postgres: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", target)
	if err != nil {
		return nil, fmt.Errorf("failed to build migrator: %w", err)
	}
	return m, nil
}

// schemaVersion returns 0 for a database that has never been migrated.
func schemaVersion(m *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, dirty, nil
}

// rewindDirty moves the marker one step back so Up re-runs the interrupted
// migration. Every statement in the schema files uses IF [NOT] EXISTS.
func rewindDirty(m *migrate.Migrate, version uint) error {
	prev := int(version) - 1
	if prev == 0 {
		prev = database.NilVersion
	}

	slog.Warn("[Migrations] Interrupted migration found, re-running it", "schema_version", version, "rewind_to", prev)
	if err := m.Force(prev); err != nil {
		return fmt.Errorf("failed to rewind dirty schema version %d: %w", version, err)
	}
	return nil
}
