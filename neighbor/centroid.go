package neighbor

import (
	"math"
	"sort"

	"github.com/viant/wordvec/table"
	"github.com/viant/wordvec/vector"
)

// DocumentVector returns the mean vector of the vocabulary members of words,
// or a zero vector when none is in the vocabulary.
func DocumentVector(t table.Table, words []string) []float32 {
	return centroid(t, Members(t, words))
}

func centroid(t table.Table, tokens []string) []float32 {
	vecs := make([][]float32, 0, len(tokens))
	for _, token := range tokens {
		vec, _ := t.Vector(token)
		vecs = append(vecs, vec)
	}
	mean, err := vector.Mean(t.Dimension(), vecs...)
	if err != nil {
		// a table never holds vectors of another dimension
		return vector.Zero(t.Dimension())
	}
	return mean
}

// TopWords ranks the distinct vocabulary members of words by cosine
// similarity to their centroid and returns the n best, descending; n <= 0
// returns all of them. Equal scores keep first-occurrence order. It returns
// nil when no word is in the vocabulary.
func TopWords(t table.Table, words []string, n int) []table.ScoredToken {
	members := Members(t, words)
	if len(members) == 0 {
		return nil
	}
	center := centroid(t, members)
	ret := make([]table.ScoredToken, 0, len(members))
	for _, token := range unique(members) {
		vec, _ := t.Vector(token)
		score, err := vector.CosineSimilarity(vec, center)
		if err != nil {
			continue
		}
		ret = append(ret, table.ScoredToken{Token: token, Score: score})
	}
	sort.SliceStable(ret, func(i, j int) bool { return ret[i].Score > ret[j].Score })
	if n > 0 && len(ret) > n {
		ret = ret[:n]
	}
	return ret
}

// NearestToOrigin returns the vocabulary member of words with the smallest
// Euclidean norm, paired with that norm, or nil when none is in the
// vocabulary. The first occurrence wins ties.
func NearestToOrigin(t table.Table, words []string) *table.ScoredToken {
	var best *table.ScoredToken
	minNorm := math.Inf(1)
	for _, token := range Members(t, words) {
		vec, _ := t.Vector(token)
		norm := vector.Norm(vec)
		if norm < minNorm {
			minNorm = norm
			best = &table.ScoredToken{Token: token, Score: norm}
		}
	}
	return best
}
