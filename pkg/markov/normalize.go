package markov

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultDelimiters is the sentence delimiter set used when a Builder is not
// configured otherwise. A token ends a sentence when its final rune is one
// of these.
var DefaultDelimiters = []rune{',', '.', '!'}

var (
	// stripRegex removes bracketed annotations, straight and curly quotation
	// marks, parentheses, apostrophes, underscores and carriage returns.
	stripRegex = regexp.MustCompile(`\[.+?\]|["“”’'()_\r]`)
	// spaceRegex collapses whitespace runs into a single space.
	spaceRegex = regexp.MustCompile(`\s+`)
)

// Normalize sanitizes raw corpus text: newlines become spaces, annotations
// and quotation characters are removed, and runs of whitespace collapse into
// a single space.
func Normalize(text string) string {
	s := strings.ReplaceAll(text, "\n", " ")
	s = stripRegex.ReplaceAllString(s, "")
	return spaceRegex.ReplaceAllString(s, " ")
}

// Tokens normalizes text and splits it on whitespace. Empty tokens are
// discarded.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

// isTerminator reports whether token ends a sentence, by inspecting only its
// final rune. Abbreviations like "Mr." therefore terminate too; that quirk
// is part of the model's contract.
func isTerminator(token string, delimiters []rune) bool {
	last, size := utf8.DecodeLastRuneInString(token)
	if size == 0 {
		return false
	}
	for _, d := range delimiters {
		if last == d {
			return true
		}
	}
	return false
}

// trimTerminator returns token with its final delimiter rune removed. The
// stored form of a terminator token carries no punctuation; a token that is
// nothing but a delimiter trims down to the empty string.
func trimTerminator(token string) string {
	_, size := utf8.DecodeLastRuneInString(token)
	return token[:len(token)-size]
}
