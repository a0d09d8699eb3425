// Package vector provides numeric helpers over dense float32 embeddings used
// throughout this module. It includes:
//   - cosine similarity, L2 distance, norm, dot product and centroid (mean)
//   - Embedding encoding (BLOB) for SQLite-backed tables
package vector
