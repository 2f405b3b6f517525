// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/internal/utils"
	"github.com/MKhiriev/go-session-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func failOnParse(t *testing.T) func(context.Context, string) (models.Session, error) {
	return func(_ context.Context, _ string) (models.Session, error) {
		t.Fatal("ParseToken should not be called")
		return models.Session{}, nil
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	validSession := models.Session{TokenID: "jti", UserID: 42, Login: "alice"}

	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Session, error)
		expectedStatus int
		expectedBody   string
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:           "no scheme separator → 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:           "wrong scheme → 401",
			authHeader:     "Basic YWxpY2U6eA==",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:           "empty bearer token → 401",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:       "valid token → next called",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(_ context.Context, s string) (models.Session, error) {
				if s != "valid-token" {
					return models.Session{}, service.ErrTokenIsExpiredOrInvalid
				}
				return validSession, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "lower-case scheme accepted",
			authHeader: "bearer valid-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Session, error) {
				return validSession, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "expired or revoked token → 401",
			authHeader: "Bearer revoked-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Session, error) {
				return models.Session{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:       "storage failure → 500",
			authHeader: "Bearer some-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Session, error) {
				return models.Session{}, store.ErrScanningRow
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := tt.parseTokenFn
			if parse == nil {
				parse = failOnParse(t)
			}
			h := newHandlerWithServices(&mockAuthService{parseTokenFn: parse}, nil)

			nextCalled := false
			var captured models.Session
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				captured, _ = utils.GetSessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, strings.TrimSpace(rr.Body.String()))
			}
			if tt.nextCalled {
				assert.Equal(t, validSession, captured)
			}
		})
	}
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newHandlerWithServices(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Session, error) {
			return models.Session{Login: "alice"}, nil
		},
	}, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	req.Header.Set("Authorization", "Bearer token")

	h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	_, ok := utils.GetSessionFromContext(req.Context())
	assert.False(t, ok, "original request context must not carry the session")
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newHandlerWithServices(&mockAuthService{
		parseTokenFn: func(_ context.Context, s string) (models.Session, error) {
			return models.Session{TokenID: s, Login: s}, nil
		},
	}, nil)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan string, n)

	for i := range n {
		token := "token-" + strings.Repeat("x", i)
		wg.Go(func() {
			var got models.Session
			rr := executeAuth(h, "Bearer "+token, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = utils.GetSessionFromContext(r.Context())
			}))
			if rr.Code != http.StatusOK || got.TokenID != token {
				errs <- token
			}
		})
	}
	wg.Wait()
	close(errs)

	require.Empty(t, errs)
}
