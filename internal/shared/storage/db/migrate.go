package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"skillpath-backend/internal/shared/telemetry"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrationFiles embed.FS

func init() {
	goose.SetBaseFS(migrationFiles)
}

// RunMigrations brings the schema up to the newest embedded migration and
// logs the version it moved from and to. A nil database is a no-op.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	from, err := goose.GetDBVersionContext(ctx, database)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if err := goose.UpContext(ctx, database, migrationsDir); err != nil {
		return err
	}
	to, err := goose.GetDBVersionContext(ctx, database)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	applied, err := embeddedMigrations(from, to)
	if err != nil {
		return err
	}
	telemetry.Info("db.migrations.applied", map[string]any{
		"from_version": from,
		"to_version":   to,
		"applied":      len(applied),
	})
	return nil
}

// embeddedMigrations lists the embedded migrations in (after, upTo], oldest first.
func embeddedMigrations(after, upTo int64) (goose.Migrations, error) {
	migrations, err := goose.CollectMigrations(migrationsDir, after, upTo)
	if errors.Is(err, goose.ErrNoMigrationFiles) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("collect migrations: %w", err)
	}
	return migrations, nil
}
