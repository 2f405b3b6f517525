// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/view_mock.go -package=mock

// View is the set of display capabilities the session client drives.
// Implementations must tolerate being called from any goroutine.
type View interface {
	// ShowStatus replaces the status line.
	ShowStatus(kind models.StatusKind, message string)
	// ShowOutput replaces the output region.
	ShowOutput(text string)
	// SetAuthenticated switches between the login form and the
	// authenticated section.
	SetAuthenticated(authenticated bool)
	// RenderToken shows the already redacted token or the no-token
	// placeholder.
	RenderToken(display string)
}

// ClientSessionService is the session client. Every operation updates the
// view itself and returns the error it displayed, if any.
type ClientSessionService interface {
	Login(ctx context.Context, username, password string) error
	Token(ctx context.Context) string
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context)
}
