// ABOUTME: Word tokenization and whitespace normalization helpers
// ABOUTME: Shared by the summarizer, keyword extractor and article extractor

package textutil

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it into word tokens. Anything that is
// not a letter, digit, apostrophe or hyphen separates tokens; apostrophes
// and hyphens are kept inside words ("don't", "anti-war") but trimmed from
// the edges.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '\'' && c != '-'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'-")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// IsAlphabetic reports whether the token consists only of letters.
func IsAlphabetic(token string) bool {
	if token == "" {
		return false
	}
	for _, c := range token {
		if !unicode.IsLetter(c) {
			return false
		}
	}
	return true
}

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// trims the result.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
