// Package neighbor answers lookup, filtering, ranking and chaining questions
// over an embedding table: vector lookup with zero fallback, substring
// vocabulary filtering, neighbors above a threshold, closest pair, nearest
// neighbor with exclusions, neighbor chains, document centroids and top-k
// similarity to a centroid.
//
// Every function takes the table explicitly and keeps no state. Absent words,
// empty filtered lists and exhausted candidates are reported as empty or nil
// results; only errors raised by the table itself are returned, unmodified.
package neighbor
