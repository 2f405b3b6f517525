// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client and the server:
// request-context values, JSON/text response writing, the resty client
// wrapper, JWT issuing and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the auth middleware stores the
// [models.Session] of the authenticated request.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session stored by WithSession.
// ok is false when the value is missing or has an unexpected type.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}
