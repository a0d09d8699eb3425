package neighbor

import (
	"github.com/viant/wordvec/corpus"
	"github.com/viant/wordvec/table"
	"github.com/viant/wordvec/vector"
)

// DocumentMatch is the best document found by NearestDocument.
type DocumentMatch struct {
	ID    string
	Score float64
}

// NearestDocument compares the document vector of queryID with the document
// vector of every candidate and returns the most similar one. When
// candidateIDs is empty every document of c is a candidate. The query
// document itself, ids unknown to c and documents without a defined
// similarity are skipped. It returns nil when queryID is unknown, its vector
// is zero, or no candidate remains; the first candidate wins ties.
func NearestDocument(t table.Table, c corpus.Corpus, queryID string, candidateIDs []string) *DocumentMatch {
	tokens, ok := c.Tokens(queryID)
	if !ok {
		return nil
	}
	query := DocumentVector(t, tokens)
	if vector.Norm(query) == 0 {
		return nil
	}
	if len(candidateIDs) == 0 {
		candidateIDs = c.DocumentIDs()
	}
	var best *DocumentMatch
	for _, id := range candidateIDs {
		if id == queryID {
			continue
		}
		docTokens, ok := c.Tokens(id)
		if !ok {
			continue
		}
		score, err := vector.CosineSimilarity(query, DocumentVector(t, docTokens))
		if err != nil {
			continue
		}
		if best == nil || score > best.Score {
			best = &DocumentMatch{ID: id, Score: score}
		}
	}
	return best
}
