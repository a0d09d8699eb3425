package neighbor

import (
	"strings"

	"github.com/viant/wordvec/table"
	"github.com/viant/wordvec/vector"
)

// VectorOf returns a copy of the vector for word, or a zero vector of the
// table dimension when word is not in the vocabulary.
func VectorOf(t table.Table, word string) []float32 {
	if vec, ok := t.Vector(table.Normalize(word)); ok {
		return vector.Clone(vec)
	}
	return vector.Zero(t.Dimension())
}

// SubstringMembers returns every vocabulary token containing substring, in
// vocabulary order. An empty substring matches the whole vocabulary.
func SubstringMembers(t table.Table, substring string) []string {
	needle := strings.ToLower(substring)
	var ret []string
	for _, token := range t.Vocabulary() {
		if strings.Contains(token, needle) {
			ret = append(ret, token)
		}
	}
	return ret
}

// Members returns the normalized words that are in the vocabulary, in input
// order, duplicates included.
func Members(t table.Table, words []string) []string {
	var ret []string
	for _, word := range words {
		token := table.Normalize(word)
		if t.Contains(token) {
			ret = append(ret, token)
		}
	}
	return ret
}

func unique(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	ret := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		ret = append(ret, token)
	}
	return ret
}
