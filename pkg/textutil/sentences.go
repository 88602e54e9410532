// ABOUTME: Sentence boundary detection for plain English text
// ABOUTME: Used by the summarizer and title synthesis, tolerant of abbreviations

package textutil

import (
	"strings"
	"unicode"
)

// abbreviations that end with a period but do not terminate a sentence.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sen": {},
	"gov": {}, "gen": {}, "rep": {}, "st": {}, "jr": {}, "sr": {},
	"vs": {}, "etc": {}, "inc": {}, "ltd": {}, "corp": {}, "co": {},
	"no": {}, "dept": {}, "univ": {}, "approx": {}, "fig": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {},
	"aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
	"u.s": {}, "u.k": {}, "u.n": {}, "e.g": {}, "i.e": {},
}

// Sentences splits text into sentences. A sentence ends at '.', '!' or '?'
// followed by whitespace and an upper-case letter, digit or quote, unless
// the period belongs to a known abbreviation or a decimal number.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}

		// consume trailing closers like quotes or parens
		end := i
		for end+1 < len(runes) && isCloser(runes[end+1]) {
			end++
		}

		if end+1 >= len(runes) {
			s := strings.TrimSpace(string(runes[start:]))
			if s != "" {
				sentences = append(sentences, s)
			}
			start = len(runes)
			break
		}

		if !unicode.IsSpace(runes[end+1]) {
			continue
		}

		if c == '.' {
			if isDecimalPoint(runes, i) || isAbbreviation(runes, start, i) {
				continue
			}
		}

		// find the first non-space rune after the boundary
		next := end + 1
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next < len(runes) && !startsSentence(runes[next]) {
			continue
		}

		s := strings.TrimSpace(string(runes[start : end+1]))
		if s != "" {
			sentences = append(sentences, s)
		}
		start = next
		i = next - 1
	}

	if start < len(runes) {
		s := strings.TrimSpace(string(runes[start:]))
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}

func isCloser(c rune) bool {
	switch c {
	case '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}

func startsSentence(c rune) bool {
	return unicode.IsUpper(c) || unicode.IsDigit(c) ||
		c == '"' || c == '\'' || c == '“' || c == '‘'
}

func isDecimalPoint(runes []rune, i int) bool {
	return i > 0 && i+1 < len(runes) &&
		unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
}

func isAbbreviation(runes []rune, start, i int) bool {
	// walk back to the beginning of the word before the period
	w := i
	for w > start && (unicode.IsLetter(runes[w-1]) || runes[w-1] == '.') {
		w--
	}
	word := strings.ToLower(strings.TrimSuffix(string(runes[w:i]), "."))
	if word == "" {
		return false
	}
	// single letters ("J. Smith") read as initials
	if len(word) == 1 {
		return true
	}
	_, ok := abbreviations[word]
	return ok
}
