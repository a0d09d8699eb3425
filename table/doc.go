// Package table defines the embedding-table contract consumed by the
// neighbor queries. Providers live in sub-packages: memory (in-process
// brute-force) and sqltable (SQLite with vec_cosine).
package table
