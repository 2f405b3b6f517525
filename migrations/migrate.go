// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of both binaries and applies it
// with goose: the server's users and sessions tables (PostgreSQL) and the
// client's token slot table (SQLite).
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies the server schema to a PostgreSQL database.
func Migrate(db *sql.DB) error {
	return up(db, goose.DialectPostgres, "postgres")
}

// MigrateClient applies the client token schema to a SQLite database.
func MigrateClient(db *sql.DB) error {
	return up(db, goose.DialectSQLite3, "sqlite")
}

func up(db *sql.DB, dialect goose.Dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error reading %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(context.Background()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
