package corpus

import "regexp"

// wordPunct splits text into runs of word characters and runs of
// punctuation, dropping whitespace.
var wordPunct = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]+`)

// Tokenize splits text into word and punctuation tokens, keeping case.
func Tokenize(text string) []string {
	return wordPunct.FindAllString(text, -1)
}
