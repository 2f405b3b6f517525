// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-keeper/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"user_id", "login", "password_hash", "created_at"}

var sessionColumns = []string{"token_id", "user_id", "login", "created_at", "expires_at"}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(models.User{}.TableName()).
		Columns("login", "password_hash").
		Values(user.Login, user.PasswordHash).
		Suffix("RETURNING user_id, login, password_hash, created_at").
		ToSql()
}

func buildFindUserByLoginQuery(login string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildSaveSessionQuery(session models.Session) (string, []any, error) {
	return psql.
		Insert(models.Session{}.TableName()).
		Columns(sessionColumns...).
		Values(session.TokenID, session.UserID, session.Login, session.CreatedAt, session.ExpiresAt).
		ToSql()
}

func buildFindSessionQuery(tokenID string) (string, []any, error) {
	return psql.
		Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(sq.Eq{"token_id": tokenID}).
		ToSql()
}

func buildDeleteSessionQuery(tokenID string) (string, []any, error) {
	return psql.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"token_id": tokenID}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return psql.
		Delete(models.Session{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
