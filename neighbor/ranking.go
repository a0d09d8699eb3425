package neighbor

import (
	"errors"

	"github.com/viant/wordvec/table"
	"github.com/viant/wordvec/vector"
)

// Pair is the closest pair of words found by ClosestPair, with A < B.
type Pair struct {
	Score float64
	A     string
	B     string
}

func (p *Pair) before(q *Pair) bool {
	if p.A != q.A {
		return p.A < q.A
	}
	return p.B < q.B
}

// NeighborsAboveThreshold ranks the whole vocabulary by similarity to word
// and keeps the entries scoring strictly above threshold, descending.
func NeighborsAboveThreshold(t table.Table, word string, threshold float64) ([]table.ScoredToken, error) {
	token := table.Normalize(word)
	if !t.Contains(token) {
		return nil, nil
	}
	ranked, err := t.MostSimilar(token, 0)
	if err != nil {
		return nil, err
	}
	var ret []table.ScoredToken
	for _, item := range ranked {
		if item.Score > threshold {
			ret = append(ret, item)
		}
	}
	return ret, nil
}

// ClosestPair returns the pair of distinct vocabulary words with the highest
// similarity, or nil when fewer than two distinct words are in the
// vocabulary. Ties go to the lexicographically first pair. Pairs with an
// undefined similarity are skipped.
func ClosestPair(t table.Table, words []string) (*Pair, error) {
	tokens := unique(Members(t, words))
	if len(tokens) < 2 {
		return nil, nil
	}
	var best *Pair
	for i := 0; i < len(tokens); i++ {
		for j := i + 1; j < len(tokens); j++ {
			score, err := t.Similarity(tokens[i], tokens[j])
			if errors.Is(err, vector.ErrZeroMagnitude) {
				continue
			}
			if err != nil {
				return nil, err
			}
			candidate := &Pair{Score: score, A: tokens[i], B: tokens[j]}
			if candidate.B < candidate.A {
				candidate.A, candidate.B = candidate.B, candidate.A
			}
			if best == nil || score > best.Score || (score == best.Score && candidate.before(best)) {
				best = candidate
			}
		}
	}
	return best, nil
}

// NearestExcluding returns the most similar token to word that is not in
// excluded, or nil when word is absent or every candidate is excluded.
func NearestExcluding(t table.Table, word string, excluded []string) (*table.ScoredToken, error) {
	token := table.Normalize(word)
	if !t.Contains(token) {
		return nil, nil
	}
	skip := make(map[string]bool, len(excluded))
	for _, ex := range excluded {
		skip[table.Normalize(ex)] = true
	}
	return nearestExcluding(t, token, skip)
}

func nearestExcluding(t table.Table, token string, skip map[string]bool) (*table.ScoredToken, error) {
	ranked, err := t.MostSimilar(token, 0)
	if err != nil {
		return nil, err
	}
	for _, item := range ranked {
		if !skip[item.Token] {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

// NeighborChain builds a chain of at most length tokens starting from word:
// each step picks the nearest neighbor of the previous tail that is neither
// the seed nor already in the chain. The chain stops early when no candidate
// remains; the seed itself is never part of the result.
func NeighborChain(t table.Table, word string, length int) ([]table.ScoredToken, error) {
	seed := table.Normalize(word)
	if length <= 0 || !t.Contains(seed) {
		return nil, nil
	}
	used := map[string]bool{seed: true}
	var chain []table.ScoredToken
	tail := seed
	for len(chain) < length {
		next, err := nearestExcluding(t, tail, used)
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		chain = append(chain, *next)
		used[next.Token] = true
		tail = next.Token
	}
	return chain, nil
}
