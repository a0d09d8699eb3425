package bruteforce

import (
	"fmt"
	"math"
	"sort"

	"github.com/viant/wordvec/index"
	"github.com/viant/wordvec/vector"
)

// Index is a simple brute-force vector index implementing cosine similarity.
// It is read-only after Build and safe for concurrent queries.
type Index struct {
	ids  []string
	vecs [][]float32
	dim  int
	mags []float64
}

// New builds an index over ids and vectors.
func New(ids []string, vectors [][]float32) (*Index, error) {
	ret := &Index{}
	if err := ret.Build(ids, vectors); err != nil {
		return nil, err
	}
	return ret, nil
}

// Build loads ids and vectors and precomputes magnitudes.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.mags, i.dim = nil, nil, nil, 0
		return nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return fmt.Errorf("bruteforce: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
	}
	mags := make([]float64, len(vectors))
	for j := range vectors {
		mags[j] = math.Sqrt(vector.Dot(vectors[j], vectors[j]))
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.dim = dim
	i.mags = mags
	return nil
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// Dim returns the indexed vector dimension.
func (i *Index) Dim() int { return i.dim }

// Query returns top-k by cosine similarity. Zero-magnitude vectors never
// match, and a zero-magnitude query matches nothing. Equal scores keep build
// order.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if i.dim == 0 || len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, fmt.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	qm := math.Sqrt(vector.Dot(query, query))
	if qm == 0 {
		return nil, nil, nil
	}
	type scored struct {
		idx   int
		score float64
	}
	scoreds := make([]scored, 0, len(i.vecs))
	for j := range i.vecs {
		if i.mags[j] == 0 {
			continue
		}
		s := vector.Dot(query, i.vecs[j]) / (qm * i.mags[j])
		if math.IsNaN(s) {
			continue
		}
		scoreds = append(scoreds, scored{idx: j, score: s})
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].score > scoreds[b].score })
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outScores := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outScores[n] = scoreds[n].score
	}
	return outIDs, outScores, nil
}

var _ index.Index = (*Index)(nil)
