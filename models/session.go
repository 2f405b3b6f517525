// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side record of an issued access token.
// A token is accepted only while its session exists and has not expired;
// logout deletes the record.
type Session struct {
	// TokenID is the "jti" claim of the token this session belongs to.
	TokenID string

	UserID int64
	Login  string

	CreatedAt time.Time
	ExpiresAt time.Time
}

// TableName returns the name of the database table associated with Session.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
