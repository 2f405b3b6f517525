// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the session client
// and the session API.
//
// The primary abstraction is [AuthAdapter], which decouples the session
// service from HTTP. The package ships a REST implementation
// ([NewHTTPAuthAdapter]) built on resty.
//
// Failures are reported as typed errors so the caller can tell them apart:
// [*TransportError] when no response was received, [*ApplicationError] for
// non-2xx responses and [ErrMalformedResponse] (wrapped) for a 2xx body
// that cannot be used.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_adapter_mock.go -package=mock

// AuthAdapter defines the session API operations used by the client.
// Implementations must send "Authorization: Bearer <token>" on Me and
// Logout even when token is empty.
type AuthAdapter interface {
	// Login submits the credentials form-encoded to POST /login and returns
	// the decoded response. A 2xx response without an access token is
	// reported as [ErrMalformedResponse].
	Login(ctx context.Context, username, password string) (models.LoginResponse, error)

	// Me calls GET /me and returns the response body as text.
	Me(ctx context.Context, token string) (string, error)

	// Logout calls POST /logout and returns the response body as text.
	Logout(ctx context.Context, token string) (string, error)
}
