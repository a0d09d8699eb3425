package index

// Index defines an exact vector index answering kNN queries by cosine
// similarity over a fixed set of (id, embedding) pairs.
type Index interface {
	// Build constructs the index from the given ids and vectors.
	// ids and vectors must have the same length and all vectors the same dimension.
	Build(ids []string, vectors [][]float32) error

	// Query returns up to k matches as parallel slices of ids and scores,
	// ordered by descending cosine similarity. k <= 0 returns every match.
	Query(query []float32, k int) (ids []string, scores []float64, err error)

	// Len returns the number of indexed vectors.
	Len() int

	// Dim returns the dimension of indexed vectors, 0 when empty.
	Dim() int
}
