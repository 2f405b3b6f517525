// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// session API handlers and the session client.
//
// The server writes the Msg* strings into response bodies; the client shows
// them in its status region. Keeping them in one place keeps the wording of
// both sides in sync.
package app

// Server response bodies.
const (
	// MsgInvalidDataProvided is returned when the login form cannot be
	// parsed or a required field is missing.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the username/password pair
	// does not match an account.
	MsgInvalidLoginPassword = "Incorrect username or password"

	// MsgTokenIsExpiredOrInvalid is returned for a missing, malformed,
	// expired or revoked bearer token.
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"

	// MsgSuccessfullyLoggedOut is the logout confirmation message.
	MsgSuccessfullyLoggedOut = "Successfully logged out."

	MsgInternalServerError = "internal server error"
)

// Client status messages.
const (
	MsgLoggedIn     = "Logged in"
	MsgLoggedOut    = "Logged out"
	MsgLoginFailed  = "Login failed"
	MsgLogoutFailed = "Logout failed"

	MsgTokenCopied = "Token copied to clipboard"
	MsgCopyFailed  = "Copy failed"

	// MsgNoToken is rendered in place of the token when none is stored.
	MsgNoToken = "(no token)"
)
