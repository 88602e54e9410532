// ABOUTME: Body locator strategies for isolating article text from arbitrary markup
// ABOUTME: Heuristic container search is the default, go-readability is the fallback

package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"insightink-api/pkg/textutil"
)

// BodyLocator isolates body text from a parsed article page. Implementations
// return an empty string when they cannot find enough content, so locators
// can be chained.
type BodyLocator interface {
	// LocateBody returns the article body text, or "" when not found.
	LocateBody(doc *goquery.Document, pageURL string) string
}

// containerClassVocabulary marks elements likely to hold article text.
var containerClassVocabulary = []string{"article", "story", "content", "post", "body"}

const (
	// minParagraphLength filters captions and bylines out of the body.
	minParagraphLength = 30

	// containerStopLength ends the container scan once enough text is found.
	containerStopLength = 300

	// fallbackTriggerLength switches to the whole-page scan when the
	// container scan came up short.
	fallbackTriggerLength = 200

	// fallbackStopLength ends the whole-page scan.
	fallbackStopLength = 500

	// maxContainers bounds the container scan to the first few matches.
	maxContainers = 3
)

// HeuristicLocator finds body text by scanning containers whose class
// attribute suggests article content, falling back to every paragraph on the
// page when the containers come up short.
type HeuristicLocator struct{}

// NewHeuristicLocator creates the default body locator.
func NewHeuristicLocator() *HeuristicLocator {
	return &HeuristicLocator{}
}

// LocateBody implements BodyLocator.
func (l *HeuristicLocator) LocateBody(doc *goquery.Document, _ string) string {
	text := l.fromContainers(doc)
	if len(text) < fallbackTriggerLength {
		text = l.fromAllParagraphs(doc)
	}
	return textutil.NormalizeWhitespace(text)
}

// fromContainers concatenates long paragraphs from the first few elements
// whose class names match the container vocabulary.
func (l *HeuristicLocator) fromContainers(doc *goquery.Document) string {
	var parts []string
	total := 0
	seen := 0

	doc.Find("article, div, main").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		if !matchesVocabulary(class) {
			return true
		}
		seen++

		s.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
			text := strings.TrimSpace(p.Text())
			if len(text) > minParagraphLength {
				parts = append(parts, text)
				total += len(text)
			}
			return total <= containerStopLength
		})

		return seen < maxContainers && total <= containerStopLength
	})

	return strings.Join(parts, " ")
}

// fromAllParagraphs scans every paragraph on the page with the same filter.
func (l *HeuristicLocator) fromAllParagraphs(doc *goquery.Document) string {
	var parts []string
	total := 0

	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := strings.TrimSpace(p.Text())
		if len(text) > minParagraphLength {
			parts = append(parts, text)
			total += len(text)
		}
		return total <= fallbackStopLength
	})

	return strings.Join(parts, " ")
}

func matchesVocabulary(class string) bool {
	if class == "" {
		return false
	}
	class = strings.ToLower(class)
	for _, marker := range containerClassVocabulary {
		if strings.Contains(class, marker) {
			return true
		}
	}
	return false
}

// ReadabilityLocator delegates body isolation to go-readability. It is
// slower than the heuristic scan but handles pages with unhelpful class
// names, so it runs second in the default chain.
type ReadabilityLocator struct{}

// NewReadabilityLocator creates a readability-backed locator.
func NewReadabilityLocator() *ReadabilityLocator {
	return &ReadabilityLocator{}
}

// LocateBody implements BodyLocator.
func (l *ReadabilityLocator) LocateBody(doc *goquery.Document, pageURL string) string {
	html, err := doc.Html()
	if err != nil {
		return ""
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = nil
	}

	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err != nil {
		return ""
	}

	return textutil.NormalizeWhitespace(article.TextContent)
}
