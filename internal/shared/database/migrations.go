package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RunMigrations applies every .sql file under dir that schema_migrations has
// not recorded yet, in lexical order, each in its own transaction.
func (db *DB) RunMigrations(ctx context.Context, dir string) error {
	logger := slog.With("component", "migrations", "dir", dir)
	logger.Info("Starting database migrations")

	if err := db.createMigrationsTable(ctx); err != nil {
		logger.Error("Failed to create migrations table", "error", err)
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations, err := migrationFiles(os.DirFS(dir))
	if err != nil {
		logger.Error("Failed to get migration files", "error", err)
		return fmt.Errorf("failed to get migration files: %w", err)
	}

	logger.Info("Found migration files", "count", len(migrations))

	for _, name := range migrations {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if err := db.runMigration(ctx, name, string(content)); err != nil {
			logger.Error("Failed to run migration", "migration", name, "error", err)
			return fmt.Errorf("failed to run migration %s: %w", name, err)
		}
	}

	logger.Info("All migrations completed successfully")
	return nil
}

func (db *DB) createMigrationsTable(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT NOW()
	)`

	_, err := db.ExecContext(ctx, query)
	return err
}

// migrationFiles lists the top-level .sql files of fsys, sorted by name.
func migrationFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var migrations []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			migrations = append(migrations, e.Name())
		}
	}

	sort.Strings(migrations)
	return migrations, nil
}

func (db *DB) runMigration(ctx context.Context, name, content string) error {
	logger := slog.With(
		"component", "migrations",
		"operation", "run_migration",
		"migration", name,
	)

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", name).Scan(&exists)
	if err != nil {
		logger.Error("Failed to check migration status", "error", err)
		return err
	}

	if exists {
		logger.Debug("Migration already applied, skipping")
		return nil
	}

	logger.Info("Running migration", "size_bytes", len(content))

	tx, err := db.BeginTxContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Error("Failed to rollback transaction", "error", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, content); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", name); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Info("Migration completed successfully")
	return nil
}
