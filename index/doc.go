// Package index defines a minimal abstraction for exact vector indexes that
// are built once from embeddings and queried for kNN by cosine similarity.
// Implementations in this module include a brute-force baseline.
package index
