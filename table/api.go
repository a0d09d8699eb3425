package table

import (
	"errors"
	"strings"
)

// ErrUnknownToken reports a token that is not part of the vocabulary.
var ErrUnknownToken = errors.New("table: unknown token")

// ScoredToken pairs a vocabulary token with a similarity (or norm) score.
type ScoredToken struct {
	Token string
	Score float64
}

// Table is a read-only embedding table: a fixed mapping from normalized
// (lowercased) token to a dense vector of Dimension values. Implementations
// must be immutable while queried and safe for concurrent readers.
type Table interface {
	// Dimension returns the vector dimension D.
	Dimension() int

	// Contains reports whether token is in the vocabulary.
	Contains(token string) bool

	// Vector returns the stored vector for token. Callers must not modify it.
	Vector(token string) ([]float32, bool)

	// Vocabulary returns all tokens in table order.
	Vocabulary() []string

	// MostSimilar ranks the vocabulary by cosine similarity to token,
	// descending, excluding token itself. topN <= 0 ranks the whole
	// vocabulary. An unknown token yields an empty result.
	MostSimilar(token string, topN int) ([]ScoredToken, error)

	// Similarity returns the cosine similarity between two tokens. It
	// returns ErrUnknownToken when either is absent and an error wrapping
	// vector.ErrZeroMagnitude when the similarity is undefined.
	Similarity(a, b string) (float64, error)
}

// Normalize returns the lookup form of a word. Surrounding whitespace is
// kept, so " cat" is not the token "cat".
func Normalize(word string) string {
	return strings.ToLower(word)
}
