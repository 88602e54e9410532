// ABOUTME: Keyword extractor derives topic phrases from article text
// ABOUTME: Frequency-weighted unigram and bigram candidates with substring dedupe

package keywords

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"insightink-api/pkg/textutil"
)

const (
	// minTokenLength drops short words that rarely carry topical meaning.
	minTokenLength = 4

	defaultUnigramWeight = 2
	defaultBigramWeight  = 4
	defaultMinFrequency  = 2
)

// domainStopwords are high-frequency but non-informative words in news
// text, filtered on top of the standard English stopword set.
var domainStopwords = map[string]struct{}{
	"said": {}, "new": {}, "year": {}, "people": {}, "time": {},
	"day": {}, "also": {}, "would": {}, "could": {}, "report": {},
	"news": {},
}

// Options tunes the empirically chosen scoring constants.
type Options struct {
	// UnigramWeight multiplies a repeated single word's frequency
	UnigramWeight int

	// BigramWeight multiplies a repeated two-word phrase's frequency.
	// Bigrams weigh more since a repeated phrase is a stronger signal.
	BigramWeight int

	// MinFrequency is the repetition floor for a candidate
	MinFrequency int
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		UnigramWeight: defaultUnigramWeight,
		BigramWeight:  defaultBigramWeight,
		MinFrequency:  defaultMinFrequency,
	}
}

// Extractor derives ranked keyword phrases from body text. It is a pure
// function of its input, safe for concurrent use.
type Extractor struct {
	opts Options
}

// NewExtractor creates a keyword extractor. Zero-valued option fields fall
// back to the defaults.
func NewExtractor(opts Options) *Extractor {
	if opts.UnigramWeight <= 0 {
		opts.UnigramWeight = defaultUnigramWeight
	}
	if opts.BigramWeight <= 0 {
		opts.BigramWeight = defaultBigramWeight
	}
	if opts.MinFrequency <= 0 {
		opts.MinFrequency = defaultMinFrequency
	}
	return &Extractor{opts: opts}
}

type candidate struct {
	phrase string
	score  int
}

var displayCaser = cases.Title(language.English)

// Extract returns up to count keyword phrases ranked by weighted frequency.
// Text with no qualifying tokens yields an empty result, never an error.
func (e *Extractor) Extract(content string, count int) []string {
	if count < 1 {
		return nil
	}

	tokens := e.filterTokens(textutil.Tokenize(content))
	if len(tokens) == 0 {
		return nil
	}

	unigrams := make(map[string]int)
	for _, t := range tokens {
		unigrams[t]++
	}

	bigrams := make(map[string]int)
	for i := 0; i+1 < len(tokens); i++ {
		bigrams[tokens[i]+" "+tokens[i+1]]++
	}

	candidates := e.rank(bigrams, e.opts.BigramWeight, count*2)
	candidates = append(candidates, e.rank(unigrams, e.opts.UnigramWeight, count*3)...)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var keywords []string
	for _, c := range candidates {
		if len(keywords) == count {
			break
		}
		if overlapsAccepted(c.phrase, keywords) {
			continue
		}
		keywords = append(keywords, displayCaser.String(c.phrase))
	}
	return keywords
}

// filterTokens keeps alphabetic tokens long enough to carry meaning, with
// both stopword sets removed.
func (e *Extractor) filterTokens(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len([]rune(t)) < minTokenLength || !textutil.IsAlphabetic(t) {
			continue
		}
		if textutil.IsStopword(t) {
			continue
		}
		if _, ok := domainStopwords[t]; ok {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// rank turns a frequency table into scored candidates: top entries at or
// above the frequency floor, ordered by frequency then alphabetically.
func (e *Extractor) rank(freq map[string]int, weight, limit int) []candidate {
	candidates := make([]candidate, 0, len(freq))
	for phrase, f := range freq {
		if f >= e.opts.MinFrequency {
			candidates = append(candidates, candidate{phrase: phrase, score: f * weight})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].phrase < candidates[j].phrase
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// overlapsAccepted reports whether the phrase is a case-insensitive
// substring of an accepted keyword or vice versa. "climate" must not appear
// next to "climate change".
func overlapsAccepted(phrase string, accepted []string) bool {
	for _, a := range accepted {
		lower := strings.ToLower(a)
		if strings.Contains(lower, phrase) || strings.Contains(phrase, lower) {
			return true
		}
	}
	return false
}
