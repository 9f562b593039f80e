// Package vectorize turns document text into L2-normalized TF-IDF vectors
// over a document-frequency-pruned vocabulary.
package vectorize

import (
	"strings"
	"unicode"
)

// stopwords are dropped during tokenization. The list is intentionally
// short: TF-IDF already downweights ubiquitous terms, this only removes the
// worst of the glue words.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {},
	"that": {}, "the": {}, "this": {}, "to": {}, "was": {}, "were": {},
	"will": {}, "with": {},
}

// Tokenize lowercases text and splits it into letter/digit runs, dropping
// stopwords and tokens shorter than minLen.
func Tokenize(text string, minLen int) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		if len(tok) < minLen {
			return
		}
		if _, ok := stopwords[tok]; ok {
			return
		}
		tokens = append(tokens, tok)
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
