// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const directoryCacheTable = "directory_cache"

// collection names stored in directory_cache.collection
const (
	collectionUsers    = "users"
	collectionTeachers = "teachers"
)

// insertBatchRows caps the rows of one INSERT. Each row binds six variables,
// which keeps a statement below SQLite's 999-variable limit of older builds.
const insertBatchRows = 150

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// cacheRow is one cached record before it is bound to an INSERT.
type cacheRow struct {
	userID  string
	payload []byte
}

func buildDeleteCollectionQuery(adminID, collection string) (string, []any, error) {
	return builder.
		Delete(directoryCacheTable).
		Where(sq.Eq{"admin_id": adminID, "collection": collection}).
		ToSql()
}

// buildInsertCollectionQuery inserts rows with positions starting at offset.
func buildInsertCollectionQuery(adminID, collection string, rows []cacheRow, offset int, savedAt time.Time) (string, []any, error) {
	insert := builder.
		Insert(directoryCacheTable).
		Columns("admin_id", "collection", "position", "user_id", "payload", "saved_at")

	for i, row := range rows {
		insert = insert.Values(adminID, collection, offset+i, row.userID, row.payload, savedAt)
	}

	return insert.ToSql()
}

func buildSelectCollectionQuery(adminID, collection string) (string, []any, error) {
	return builder.
		Select("payload").
		From(directoryCacheTable).
		Where(sq.Eq{"admin_id": adminID, "collection": collection}).
		OrderBy("position").
		ToSql()
}
