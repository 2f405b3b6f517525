// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// Storages groups the server repositories.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository

	db *DB
}

// NewStorages connects to PostgreSQL and applies migrations when cfg.DSN is
// set; otherwise accounts and sessions live in memory and are lost on
// restart.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	if cfg.DSN == "" {
		logger.Warn().Msg("no database configured, using in-memory storage")
		return &Storages{
			UserRepository:    NewMemoryUserRepository(),
			SessionRepository: NewMemorySessionRepository(),
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
