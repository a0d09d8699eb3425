// Package sqltable provides an embedding table persisted in a SQLite words
// table (token, pos, embedding BLOB). Ranking is pushed down to SQLite via the
// vec_cosine function registered by the engine package.
package sqltable
