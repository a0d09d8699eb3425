// Package memory provides an in-process embedding table backed by a
// brute-force cosine index.
package memory
