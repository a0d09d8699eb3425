// Package bruteforce provides a simple vector index that answers kNN queries
// by scanning all vectors and scoring via cosine similarity. Magnitudes are
// computed once at build time.
package bruteforce
