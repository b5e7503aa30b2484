package learning

import (
	"regexp"
	"strings"
)

// nonWord matches maximal runs of anything except letters, digits and underscore
var nonWord = regexp.MustCompile(`\W+`)

// Tokenizer normalizes raw message text into a token sequence
type Tokenizer struct {
	lowercase bool
}

// NewTokenizer creates a tokenizer. With lowercase enabled (the default
// configuration) all tokens are folded to lower case before counting.
func NewTokenizer(lowercase bool) *Tokenizer {
	return &Tokenizer{lowercase: lowercase}
}

// Tokenize replaces every run of non-word characters with a single space and
// splits on whitespace. Empty tokens are dropped. Identical input always
// yields an identical token sequence.
func (t *Tokenizer) Tokenize(text string) []string {
	if t.lowercase {
		text = strings.ToLower(text)
	}
	return strings.Fields(nonWord.ReplaceAllString(text, " "))
}
