// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		incoming     string
		wantReused   bool
		wantGenerate bool
	}{
		{name: "incoming id reused", incoming: "my-custom-trace-id", wantReused: true},
		{name: "uuid incoming id reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantReused: true},
		{name: "missing id generated", incoming: "", wantGenerate: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxTraceIDLen+1), wantGenerate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			rr, captured := executeWithTraceID(h, tt.incoming)

			require.NotNil(t, captured, "next must be called")
			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)

			if tt.wantReused {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantGenerate {
				id, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			}
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	_, captured := executeWithTraceID(h, "trace-42")
	logger.FromRequest(captured).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}

func TestWithTraceID_ConcurrentRequestsGetUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	const n = 50
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
		wg   sync.WaitGroup
	)

	for range n {
		wg.Go(func() {
			rr, _ := executeWithTraceID(h, "")
			mu.Lock()
			seen[rr.Header().Get(traceIDHeader)] = struct{}{}
			mu.Unlock()
		})
	}
	wg.Wait()

	assert.Len(t, seen, n)
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	originalCtx := req.Context()

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
