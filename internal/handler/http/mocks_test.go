// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; a nil field panics,
// which flags an unexpected call.
type mockAuthService struct {
	loginFn       func(ctx context.Context, login, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Session, error)
	logoutFn      func(ctx context.Context, session models.Session) error
}

func (m *mockAuthService) RegisterUser(_ context.Context, login, _ string) (models.User, error) {
	return models.User{Login: login}, nil
}

func (m *mockAuthService) SeedUsers(_ context.Context, _ []string) error {
	return nil
}

func (m *mockAuthService) Login(ctx context.Context, login, password string) (models.User, error) {
	return m.loginFn(ctx, login, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Session, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Logout(ctx context.Context, session models.Session) error {
	return m.logoutFn(ctx, session)
}

func (m *mockAuthService) PurgeExpiredSessions(_ context.Context) (int64, error) {
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
	docs    string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetAPIDocs(_ context.Context) string {
	return m.docs
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithServices(auth service.AuthService, appInfo service.AppInfoService) *Handler {
	return NewHandler(&service.Services{
		AuthService:    auth,
		AppInfoService: appInfo,
	}, config.Server{}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
