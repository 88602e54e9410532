// ABOUTME: Extractive summarizer scoring sentences by TF-IDF similarity to the document
// ABOUTME: Lead sentence bonus and reinsertion keep the opening fact in the summary

package summarize

import (
	"math"
	"sort"
	"strings"

	"insightink-api/pkg/textutil"
)

const (
	// defaultLeadBonus rewards the first sentence, since news articles
	// front-load the most important fact.
	defaultLeadBonus = 1.3

	// defaultMaxVocabulary caps the TF-IDF vocabulary at the most frequent
	// terms across the sentence set.
	defaultMaxVocabulary = 200

	// leadReinsertMaxWords bounds forced reinsertion of an unselected lead
	// sentence so a rambling opener cannot blow the summary budget.
	leadReinsertMaxWords = 30
)

// Options tunes the empirically chosen summarizer constants.
type Options struct {
	// LeadBonus multiplies the first sentence's similarity score
	LeadBonus float64

	// MaxVocabulary caps the number of TF-IDF terms
	MaxVocabulary int
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		LeadBonus:     defaultLeadBonus,
		MaxVocabulary: defaultMaxVocabulary,
	}
}

// Summarizer produces extractive summaries. It is a pure function of its
// input, safe for concurrent use.
type Summarizer struct {
	opts Options
}

// NewSummarizer creates a summarizer with the given options. Zero-valued
// fields fall back to the defaults.
func NewSummarizer(opts Options) *Summarizer {
	if opts.LeadBonus <= 0 {
		opts.LeadBonus = defaultLeadBonus
	}
	if opts.MaxVocabulary <= 0 {
		opts.MaxVocabulary = defaultMaxVocabulary
	}
	return &Summarizer{opts: opts}
}

// Summarize returns an extractive summary of at most sentenceCount
// sentences, in original narrative order. Content with that many sentences
// or fewer is returned unmodified.
func (s *Summarizer) Summarize(content string, sentenceCount int) string {
	content = strings.TrimSpace(content)
	if content == "" || sentenceCount < 1 {
		return content
	}

	sentences := textutil.Sentences(content)
	if len(sentences) <= sentenceCount {
		return content
	}

	scores, ok := s.scoreSentences(sentences)
	if !ok {
		// degenerate vocabulary, fall back to the leading sentences
		return strings.Join(sentences[:sentenceCount], " ")
	}

	scores[0] *= s.opts.LeadBonus

	selected := topIndices(scores, sentenceCount)
	sort.Ints(selected)

	// force the lead fact in when scoring dropped a short first sentence
	if selected[0] != 0 && wordCount(sentences[0]) < leadReinsertMaxWords {
		selected[0] = 0
	}

	parts := make([]string, len(selected))
	for i, idx := range selected {
		parts[i] = sentences[idx]
	}
	return strings.Join(parts, " ")
}

// scoreSentences computes the cosine similarity of each sentence's TF-IDF
// vector against the whole-document vector. Returns ok=false when no terms
// survive stopword filtering.
func (s *Summarizer) scoreSentences(sentences []string) ([]float64, bool) {
	sentenceTerms := make([][]string, len(sentences))
	for i, sentence := range sentences {
		sentenceTerms[i] = extractTerms(sentence)
	}

	vocab := buildVocabulary(sentenceTerms, s.opts.MaxVocabulary)
	if len(vocab) == 0 {
		return nil, false
	}

	idf := inverseDocumentFrequencies(sentenceTerms, vocab)

	var docTerms []string
	for _, terms := range sentenceTerms {
		docTerms = append(docTerms, terms...)
	}
	docVector := vectorize(docTerms, vocab, idf)

	scores := make([]float64, len(sentences))
	for i, terms := range sentenceTerms {
		scores[i] = dot(vectorize(terms, vocab, idf), docVector)
	}
	return scores, true
}

// extractTerms produces the unigrams and bigrams of a sentence with
// stopwords removed.
func extractTerms(sentence string) []string {
	var words []string
	for _, token := range textutil.Tokenize(sentence) {
		if !textutil.IsStopword(token) {
			words = append(words, token)
		}
	}

	terms := make([]string, 0, len(words)*2)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

// buildVocabulary keeps the limit most frequent terms across all sentences.
// Ties break alphabetically so the cap is deterministic.
func buildVocabulary(sentenceTerms [][]string, limit int) map[string]int {
	freq := make(map[string]int)
	for _, terms := range sentenceTerms {
		for _, t := range terms {
			freq[t]++
		}
	}
	if len(freq) == 0 {
		return nil
	}

	ordered := make([]string, 0, len(freq))
	for t := range freq {
		ordered = append(ordered, t)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if freq[ordered[i]] != freq[ordered[j]] {
			return freq[ordered[i]] > freq[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})

	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	vocab := make(map[string]int, len(ordered))
	for i, t := range ordered {
		vocab[t] = i
	}
	return vocab
}

// inverseDocumentFrequencies computes smoothed IDF weights over the
// sentence set: ln((1+N)/(1+df)) + 1.
func inverseDocumentFrequencies(sentenceTerms [][]string, vocab map[string]int) []float64 {
	df := make([]int, len(vocab))
	for _, terms := range sentenceTerms {
		seen := make(map[int]struct{}, len(terms))
		for _, t := range terms {
			if idx, ok := vocab[t]; ok {
				seen[idx] = struct{}{}
			}
		}
		for idx := range seen {
			df[idx]++
		}
	}

	n := float64(len(sentenceTerms))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}
	return idf
}

// vectorize builds an L2-normalized TF-IDF vector for a term sequence.
func vectorize(terms []string, vocab map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(vocab))
	for _, t := range terms {
		if idx, ok := vocab[t]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// topIndices returns the indices of the count highest scores. Ties favor
// earlier sentences.
func topIndices(scores []float64, count int) []int {
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return scores[indices[i]] > scores[indices[j]]
	})
	if count > len(indices) {
		count = len(indices)
	}
	return append([]int(nil), indices[:count]...)
}

func wordCount(sentence string) int {
	return len(strings.Fields(sentence))
}
