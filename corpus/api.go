package corpus

// Corpus gives access to tokenized documents by id.
type Corpus interface {
	// DocumentIDs returns every document id in a stable order.
	DocumentIDs() []string

	// Tokens returns the tokens of a document, false when id is unknown.
	Tokens(id string) ([]string, bool)
}
