// ABOUTME: Embedded English stopword list used for TF-IDF and keyword filtering
// ABOUTME: Covers the standard English function-word set

package textutil

import "strings"

var stopwordList = []string{
	"a", "about", "above", "after", "again", "against", "ain", "all", "am",
	"an", "and", "any", "are", "aren", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"couldn", "d", "did", "didn", "do", "does", "doesn", "doing", "don",
	"down", "during", "each", "few", "for", "from", "further", "had", "hadn",
	"has", "hasn", "have", "haven", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is",
	"isn", "it", "its", "itself", "just", "ll", "m", "ma", "me", "mightn",
	"more", "most", "mustn", "my", "myself", "needn", "no", "nor", "not",
	"now", "o", "of", "off", "on", "once", "only", "or", "other", "our",
	"ours", "ourselves", "out", "over", "own", "re", "s", "same", "shan",
	"she", "should", "shouldn", "so", "some", "such", "t", "than", "that",
	"the", "their", "theirs", "them", "themselves", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until", "up",
	"ve", "very", "was", "wasn", "we", "were", "weren", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with", "won",
	"wouldn", "y", "you", "your", "yours", "yourself", "yourselves",
}

var stopwords = func() map[string]struct{} {
	m := make(map[string]struct{}, len(stopwordList))
	for _, w := range stopwordList {
		m[w] = struct{}{}
	}
	return m
}()

// IsStopword reports whether the token is an English stopword.
// Contractions are checked against their stem ("don't" matches "don").
func IsStopword(token string) bool {
	token = strings.ToLower(token)
	if _, ok := stopwords[token]; ok {
		return true
	}
	if i := strings.IndexByte(token, '\''); i > 0 {
		if _, ok := stopwords[token[:i]]; ok {
			return true
		}
	}
	return false
}
