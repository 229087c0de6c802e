// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration brings the users schema up to date at startup with
// golang-migrate, reading the .sql files under MIGRATION_PATH.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Registers the "pgx5" database scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// Registers the "file" source scheme.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// pgx5Scheme is the scheme the golang-migrate pgx/v5 driver registers.
const pgx5Scheme = "pgx5://"

// RunUp applies every pending up migration found in migrationsPath.
//
// A dirty schema version stops startup; it needs a manual `migrate force`.
func RunUp(databaseURL string, migrationsPath string, logger *slog.Logger) error {
	logger = logger.With(slog.String("path", migrationsPath))

	migrator, err := migrate.New("file://"+migrationsPath, migrateURL(databaseURL))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceErr, databaseErr := migrator.Close()
		if err := errors.Join(sourceErr, databaseErr); err != nil {
			logger.Warn("schema_migration_close_failed", slog.Any("error", err))
		}
	}()

	migrator.Log = &migrateLogger{
		logger:  logger,
		verbose: logger.Enabled(context.Background(), slog.LevelDebug),
	}

	from, dirty, err := migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return fmt.Errorf("migration: failed to read schema version: %w", err)
	case dirty:
		return fmt.Errorf("migration: schema version %d is dirty", from)
	}

	err = migrator.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("schema_up_to_date", slog.Uint64("version", uint64(from)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration: up from version %d failed: %w", from, err)
	}

	to, _, _ := migrator.Version()
	logger.Info("schema_migrated",
		slog.Uint64("from_version", uint64(from)),
		slog.Uint64("to_version", uint64(to)),
	)

	return nil
}

// migrateURL rewrites a postgres:// or postgresql:// URL to the pgx5 scheme.
// Anything else is passed through for golang-migrate to reject.
func migrateURL(databaseURL string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(databaseURL, prefix); ok {
			return pgx5Scheme + rest
		}
	}
	return databaseURL
}

// migrateLogger sends golang-migrate's progress lines to slog at debug level.
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug("schema_migration_progress", slog.String("detail", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
