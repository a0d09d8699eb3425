package corpus

import "sort"

// Memory is an in-memory corpus keyed by document id.
type Memory struct {
	ids    []string
	tokens map[string][]string
}

// NewMemory creates a corpus from already tokenized documents. Document ids
// are reported in sorted order.
func NewMemory(documents map[string][]string) *Memory {
	ret := &Memory{tokens: make(map[string][]string, len(documents))}
	for id, tokens := range documents {
		ret.ids = append(ret.ids, id)
		ret.tokens[id] = tokens
	}
	sort.Strings(ret.ids)
	return ret
}

// DocumentIDs returns a copy of the document ids.
func (m *Memory) DocumentIDs() []string { return append([]string(nil), m.ids...) }

// Tokens returns the tokens of document id.
func (m *Memory) Tokens(id string) ([]string, bool) {
	tokens, ok := m.tokens[id]
	return tokens, ok
}

// Ensure Memory satisfies the Corpus interface.
var _ Corpus = (*Memory)(nil)
