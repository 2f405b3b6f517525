// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that can log in to the session API.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user name sent as the "username" form field.
	Login string `json:"username"`

	// Password is the plain-text password received from the login form.
	// It only lives for the duration of a request and is never persisted.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash stored for the account.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}
