// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenStore is the client's single persistent slot for the access token.
type TokenStore interface {
	// Get returns the stored token, or "" with a nil error when the slot is
	// empty.
	Get(ctx context.Context) (string, error)
	// Set replaces the stored token.
	Set(ctx context.Context, token string) error
	// Remove empties the slot. Removing an empty slot is not an error.
	Remove(ctx context.Context) error
}

// UserRepository persists server accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// SessionRepository persists the server-side record behind every issued
// token.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, tokenID string) (models.Session, error)
	DeleteSession(ctx context.Context, tokenID string) error
	// DeleteExpiredSessions removes sessions with expires_at <= now and
	// returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
