package sqltable

import (
	"context"
	"database/sql"
)

const wordsSchema = `
CREATE TABLE IF NOT EXISTS words (
    token     TEXT PRIMARY KEY,
    pos       INTEGER NOT NULL,
    embedding BLOB NOT NULL
);
`

// EnsureSchema creates the words table in the provided database if it does
// not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, wordsSchema)
	return err
}
