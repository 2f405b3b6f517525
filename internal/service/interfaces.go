// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

// AuthService covers the server side of the session lifecycle: accounts,
// token issue, token validation and revocation.
type AuthService interface {
	RegisterUser(ctx context.Context, login, password string) (models.User, error)
	// SeedUsers registers every "login:password" entry. Logins that already
	// exist are skipped.
	SeedUsers(ctx context.Context, seeds []string) error

	Login(ctx context.Context, login, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken validates the JWT and the session record behind it.
	ParseToken(ctx context.Context, tokenString string) (models.Session, error)
	Logout(ctx context.Context, session models.Session) error

	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// GetAPIDocs returns the Markdown reference of the HTTP API.
	GetAPIDocs(ctx context.Context) string
}

// IDGenerator issues unique token identifiers.
type IDGenerator interface {
	Generate() string
}
