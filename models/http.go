// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenTypeBearer is the only token type issued by the session API.
const TokenTypeBearer = "bearer"

// LoginResponse is the JSON body returned by POST /login.
type LoginResponse struct {
	// AccessToken is the opaque bearer token the client persists.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// MeResponse is the JSON body returned by GET /me.
type MeResponse struct {
	Username string `json:"username"`
}

// MessageResponse is a generic JSON acknowledgement, e.g. after logout.
type MessageResponse struct {
	Message string `json:"message"`
}
