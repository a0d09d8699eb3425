package memory

import (
	"fmt"

	"github.com/viant/wordvec/index/bruteforce"
	"github.com/viant/wordvec/table"
	"github.com/viant/wordvec/vector"
)

// Table is an in-memory embedding table ranked by a brute-force index.
type Table struct {
	tokens []string
	vecs   [][]float32
	pos    map[string]int
	dim    int
	index  *bruteforce.Index
}

// New creates a table from parallel token and vector slices. Tokens are
// normalized; when two tokens normalize to the same form the first wins.
func New(tokens []string, vectors [][]float32) (*Table, error) {
	if len(tokens) != len(vectors) {
		return nil, fmt.Errorf("memory: tokens and vectors length mismatch: %d != %d", len(tokens), len(vectors))
	}
	ret := &Table{pos: make(map[string]int, len(tokens))}
	for i, raw := range tokens {
		token := table.Normalize(raw)
		if token == "" {
			return nil, fmt.Errorf("memory: empty token at %d", i)
		}
		if i == 0 {
			ret.dim = len(vectors[i])
		}
		if len(vectors[i]) != ret.dim {
			return nil, fmt.Errorf("memory: token %q has %d values, want %d", raw, len(vectors[i]), ret.dim)
		}
		if _, ok := ret.pos[token]; ok {
			continue
		}
		ret.pos[token] = len(ret.tokens)
		ret.tokens = append(ret.tokens, token)
		ret.vecs = append(ret.vecs, vectors[i])
	}
	idx, err := bruteforce.New(ret.tokens, ret.vecs)
	if err != nil {
		return nil, err
	}
	ret.index = idx
	return ret, nil
}

// Dimension returns the vector dimension.
func (t *Table) Dimension() int { return t.dim }

// Len returns the vocabulary size.
func (t *Table) Len() int { return len(t.tokens) }

// Contains reports whether token is in the vocabulary.
func (t *Table) Contains(token string) bool {
	_, ok := t.pos[token]
	return ok
}

// Vector returns the stored vector for token.
func (t *Table) Vector(token string) ([]float32, bool) {
	i, ok := t.pos[token]
	if !ok {
		return nil, false
	}
	return t.vecs[i], true
}

// Vocabulary returns a copy of all tokens in load order.
func (t *Table) Vocabulary() []string {
	return append([]string(nil), t.tokens...)
}

// MostSimilar ranks the vocabulary by cosine similarity to token.
func (t *Table) MostSimilar(token string, topN int) ([]table.ScoredToken, error) {
	query, ok := t.Vector(token)
	if !ok {
		return nil, nil
	}
	k := topN
	if k > 0 {
		k++ // token itself is dropped below
	}
	ids, scores, err := t.index.Query(query, k)
	if err != nil {
		return nil, err
	}
	ret := make([]table.ScoredToken, 0, len(ids))
	for i, id := range ids {
		if id == token {
			continue
		}
		ret = append(ret, table.ScoredToken{Token: id, Score: scores[i]})
	}
	if topN > 0 && len(ret) > topN {
		ret = ret[:topN]
	}
	return ret, nil
}

// Similarity returns the cosine similarity of two tokens.
func (t *Table) Similarity(a, b string) (float64, error) {
	va, ok := t.Vector(a)
	if !ok {
		return 0, fmt.Errorf("memory: %w: %q", table.ErrUnknownToken, a)
	}
	vb, ok := t.Vector(b)
	if !ok {
		return 0, fmt.Errorf("memory: %w: %q", table.ErrUnknownToken, b)
	}
	return vector.CosineSimilarity(va, vb)
}

// Ensure Table satisfies the table.Table interface.
var _ table.Table = (*Table)(nil)
