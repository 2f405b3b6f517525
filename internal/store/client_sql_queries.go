// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	tokensTable = "tokens"
	// accessTokenSlot is the only slot the client uses.
	accessTokenSlot = "access_token"
)

// SQLite uses the default "?" placeholders.
var sqlite = sq.StatementBuilder

func buildGetTokenQuery() (string, []any, error) {
	return sqlite.
		Select("token").
		From(tokensTable).
		Where(sq.Eq{"slot": accessTokenSlot}).
		ToSql()
}

func buildUpsertTokenQuery(token string, savedAt time.Time) (string, []any, error) {
	return sqlite.
		Insert(tokensTable).
		Columns("slot", "token", "saved_at").
		Values(accessTokenSlot, token, savedAt).
		Suffix("ON CONFLICT(slot) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at").
		ToSql()
}

func buildRemoveTokenQuery() (string, []any, error) {
	return sqlite.
		Delete(tokensTable).
		Where(sq.Eq{"slot": accessTokenSlot}).
		ToSql()
}
