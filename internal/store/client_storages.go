// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// ClientStorages groups the client-side storage. It only holds the token
// slot.
type ClientStorages struct {
	TokenStore TokenStore

	db *DB
}

// NewClientStorages picks the token slot backend from cfg:
//  1. cfg.DSN set: SQLite database at that path, migrated on open.
//  2. cfg.TokenFile set: JSON file.
//  3. otherwise: process memory.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	switch {
	case cfg.DSN != "":
		logger.Info().Str("dsn", cfg.DSN).Msg("using sqlite token store")

		db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.MigrateClient(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &ClientStorages{TokenStore: NewSQLiteTokenStore(db, logger), db: db}, nil

	case cfg.TokenFile != "":
		logger.Info().Str("path", cfg.TokenFile).Msg("using file token store")
		return &ClientStorages{TokenStore: NewFileTokenStore(cfg.TokenFile, logger)}, nil

	default:
		logger.Info().Msg("using in-memory token store")
		return &ClientStorages{TokenStore: NewMemoryTokenStore()}, nil
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
