package sqltable

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/wordvec/table"
	"github.com/viant/wordvec/vector"
)

// Table is an embedding table stored in a SQLite words table. Lookups are
// served from memory; MostSimilar and Similarity are evaluated in SQL with
// the vec_cosine function, so the database must have been opened after
// engine.RegisterVectorFunctions. The words table must not change while the
// Table is in use.
type Table struct {
	db     *sql.DB
	tokens []string
	vecs   map[string][]float32
	dim    int
}

// Open loads the vocabulary of the words table in db.
func Open(ctx context.Context, db *sql.DB) (*Table, error) {
	if db == nil {
		return nil, fmt.Errorf("sqltable: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT token, embedding FROM words ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ret := &Table{db: db, vecs: map[string][]float32{}}
	for rows.Next() {
		var token string
		var blob []byte
		if err := rows.Scan(&token, &blob); err != nil {
			return nil, err
		}
		vec, err := vector.DecodeEmbedding(blob)
		if err != nil {
			return nil, fmt.Errorf("sqltable: token %q: %w", token, err)
		}
		if len(ret.tokens) == 0 {
			ret.dim = len(vec)
		} else if len(vec) != ret.dim {
			return nil, fmt.Errorf("sqltable: token %q has %d values, want %d", token, len(vec), ret.dim)
		}
		ret.tokens = append(ret.tokens, token)
		ret.vecs[token] = vec
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Import replaces the content of the words table in db with every token of
// src, keeping src vocabulary order.
func Import(ctx context.Context, db *sql.DB, src table.Table) (int, error) {
	if db == nil {
		return 0, fmt.Errorf("sqltable: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return 0, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return 0, err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words(token, pos, embedding) VALUES(?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for i, token := range src.Vocabulary() {
		vec, ok := src.Vector(token)
		if !ok || len(vec) == 0 {
			return 0, fmt.Errorf("sqltable: token %q has no vector", token)
		}
		if _, err := stmt.ExecContext(ctx, token, i, vector.EncodeEmbedding(vec)); err != nil {
			return 0, err
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// Dimension returns the vector dimension.
func (t *Table) Dimension() int { return t.dim }

// Contains reports whether token is in the vocabulary.
func (t *Table) Contains(token string) bool {
	_, ok := t.vecs[token]
	return ok
}

// Vector returns the stored vector for token.
func (t *Table) Vector(token string) ([]float32, bool) {
	vec, ok := t.vecs[token]
	return vec, ok
}

// Vocabulary returns a copy of all tokens in table order.
func (t *Table) Vocabulary() []string {
	return append([]string(nil), t.tokens...)
}

// MostSimilar ranks the vocabulary by vec_cosine to token in SQL. Rows with
// an undefined similarity are dropped; equal scores keep table order.
func (t *Table) MostSimilar(token string, topN int) ([]table.ScoredToken, error) {
	query, ok := t.vecs[token]
	if !ok {
		return nil, nil
	}
	limit := topN
	if limit <= 0 {
		limit = -1
	}
	rows, err := t.db.Query(`
SELECT token, score FROM (
    SELECT token, pos, vec_cosine(embedding, ?) AS score
    FROM words
    WHERE token <> ?
)
WHERE score IS NOT NULL
ORDER BY score DESC, pos
LIMIT ?`, vector.EncodeEmbedding(query), token, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ret []table.ScoredToken
	for rows.Next() {
		var item table.ScoredToken
		if err := rows.Scan(&item.Token, &item.Score); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Similarity returns vec_cosine of two tokens evaluated in SQL.
func (t *Table) Similarity(a, b string) (float64, error) {
	for _, token := range []string{a, b} {
		if !t.Contains(token) {
			return 0, fmt.Errorf("sqltable: %w: %q", table.ErrUnknownToken, token)
		}
	}
	var score sql.NullFloat64
	err := t.db.QueryRow(`
SELECT vec_cosine(x.embedding, y.embedding)
FROM words x, words y
WHERE x.token = ? AND y.token = ?`, a, b).Scan(&score)
	if err != nil {
		return 0, err
	}
	if !score.Valid {
		return 0, fmt.Errorf("sqltable: similarity %q/%q: %w", a, b, vector.ErrZeroMagnitude)
	}
	return score.Float64, nil
}

// Ensure Table satisfies the table.Table interface.
var _ table.Table = (*Table)(nil)
