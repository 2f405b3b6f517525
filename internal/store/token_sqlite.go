// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// sqliteTokenStore keeps the token in the "access_token" row of the
// tokens table.
type sqliteTokenStore struct {
	db     *DB
	logger *logger.Logger
}

func NewSQLiteTokenStore(db *DB, logger *logger.Logger) TokenStore {
	return &sqliteTokenStore{db: db, logger: logger}
}

func (s *sqliteTokenStore) Get(ctx context.Context) (string, error) {
	query, args, err := buildGetTokenQuery()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Get").Msg("error reading token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

func (s *sqliteTokenStore) Set(ctx context.Context, token string) error {
	query, args, err := buildUpsertTokenQuery(token, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Set").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStore) Remove(ctx context.Context) error {
	query, args, err := buildRemoveTokenQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Remove").Msg("error removing token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
