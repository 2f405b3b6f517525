// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-session-keeper/models"
	"github.com/stretchr/testify/require"
)

func Test_buildCreateUserQuery(t *testing.T) {
	query, args, err := buildCreateUserQuery(models.User{Login: "alice", PasswordHash: "hash"})
	require.NoError(t, err)

	require.Equal(t, []any{"alice", "hash"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning user_id, login, password_hash, created_at")
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
}

func Test_buildFindUserByLoginQuery(t *testing.T) {
	query, args, err := buildFindUserByLoginQuery("alice")
	require.NoError(t, err)

	require.Equal(t, []any{"alice"}, args)
	require.Equal(t, "SELECT user_id, login, password_hash, created_at FROM users WHERE login = $1", query)
}

func Test_buildSaveSessionQuery(t *testing.T) {
	now := time.Now()
	session := models.Session{TokenID: "jti", UserID: 7, Login: "alice", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}

	query, args, err := buildSaveSessionQuery(session)
	require.NoError(t, err)

	require.Equal(t, []any{"jti", int64(7), "alice", now, now.Add(time.Hour)}, args)
	require.Equal(t, "INSERT INTO sessions (token_id,user_id,login,created_at,expires_at) VALUES ($1,$2,$3,$4,$5)", query)
}

func Test_buildSessionLookupAndDeleteQueries(t *testing.T) {
	tests := []struct {
		name  string
		build func(string) (string, []any, error)
		want  string
	}{
		{
			name:  "find",
			build: buildFindSessionQuery,
			want:  "SELECT token_id, user_id, login, created_at, expires_at FROM sessions WHERE token_id = $1",
		},
		{
			name:  "delete",
			build: buildDeleteSessionQuery,
			want:  "DELETE FROM sessions WHERE token_id = $1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build("jti")
			require.NoError(t, err)
			require.Equal(t, tt.want, query)
			require.Equal(t, []any{"jti"}, args)
		})
	}
}

func Test_buildDeleteExpiredSessionsQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildDeleteExpiredSessionsQuery(now)
	require.NoError(t, err)

	require.Equal(t, "DELETE FROM sessions WHERE expires_at <= $1", query)
	require.Equal(t, []any{now}, args)
}

func Test_clientTokenQueries(t *testing.T) {
	query, args, err := buildGetTokenQuery()
	require.NoError(t, err)
	require.Equal(t, "SELECT token FROM tokens WHERE slot = ?", query)
	require.Equal(t, []any{"access_token"}, args)

	savedAt := time.Now()
	query, args, err = buildUpsertTokenQuery("tok", savedAt)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(query, "INSERT INTO tokens (slot,token,saved_at) VALUES (?,?,?)"))
	require.Contains(t, query, "ON CONFLICT(slot) DO UPDATE")
	require.Equal(t, []any{"access_token", "tok", savedAt}, args)

	query, args, err = buildRemoveTokenQuery()
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM tokens WHERE slot = ?", query)
	require.Equal(t, []any{"access_token"}, args)
}
