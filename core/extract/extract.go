// ABOUTME: Article extractor turns raw page markup into validated article records
// ABOUTME: Tiered title resolution and a body locator chain with silent rejection

package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"insightink-api/core/domain"
	"insightink-api/core/interfaces"
	"insightink-api/pkg/textutil"
)

// maxTitleLength truncates runaway titles for display.
const maxTitleLength = 120

// Extractor isolates title and body text from single article pages.
type Extractor struct {
	locators []BodyLocator
	logger   interfaces.Logger
}

// NewExtractor creates an extractor with the given locator chain. A nil or
// empty chain gets the default heuristic-then-readability pair.
func NewExtractor(logger interfaces.Logger, locators ...BodyLocator) *Extractor {
	if len(locators) == 0 {
		locators = []BodyLocator{NewHeuristicLocator(), NewReadabilityLocator()}
	}
	return &Extractor{
		locators: locators,
		logger:   logger,
	}
}

// Extract parses raw markup and returns an article record, or nil when the
// page does not look like an article. Parse failures and thin pages are
// expected on arbitrary sites and are never surfaced as errors.
func (e *Extractor) Extract(rawHTML, pageURL string) *domain.Article {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		e.logger.Debug("Failed to parse article markup", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return nil
	}

	thumbnail, _ := doc.Find(`meta[property="og:image"]`).First().Attr("content")

	// boilerplate elements pollute both title and body text
	doc.Find("script, style, nav, footer, header, aside").Remove()

	title := e.resolveTitle(doc)

	var body string
	for _, locator := range e.locators {
		body = locator.LocateBody(doc, pageURL)
		if len(body) > domain.MinContentLength {
			break
		}
	}

	if len(body) <= domain.MinContentLength {
		e.logger.Debug("Discarding page with insufficient content", map[string]interface{}{
			"url":    pageURL,
			"length": len(body),
		})
		return nil
	}

	if title == "" {
		title = titleFromBody(body)
	}
	if title == "" {
		title = "Article"
	}

	return &domain.Article{
		URL:       pageURL,
		Title:     cleanTitle(title),
		Content:   body,
		FetchedAt: time.Now(),
		Thumbnail: thumbnail,
	}
}

// resolveTitle walks the title sources in priority order and returns the
// first non-empty candidate.
func (e *Extractor) resolveTitle(doc *goquery.Document) string {
	if t, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	if t, ok := doc.Find(`meta[name="title"]`).First().Attr("content"); ok {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return ""
}

// titleFromBody synthesizes a title from the first sentence of the body,
// cut at the first comma when one is present.
func titleFromBody(body string) string {
	sentences := textutil.Sentences(body)
	if len(sentences) == 0 {
		return ""
	}
	first := sentences[0]
	if i := strings.Index(first, ","); i > 0 {
		first = first[:i]
	}
	return strings.TrimSpace(first)
}

var titleCaser = cases.Title(language.English)

// cleanTitle normalizes scraped headlines: site-name suffixes after a
// separator are dropped, shouting all-caps headlines are converted to title
// case, and overlong titles are truncated on a word boundary.
func cleanTitle(title string) string {
	title = textutil.NormalizeWhitespace(title)

	for _, sep := range []string{" - ", " | ", " — "} {
		if i := strings.LastIndex(title, sep); i > 0 {
			head, tail := title[:i], title[i+len(sep):]
			// only treat a short tail as a site name
			if len(head) >= 20 && len(tail) <= 35 {
				title = head
			}
		}
	}

	if isAllCaps(title) {
		title = titleCaser.String(strings.ToLower(title))
	}

	if len(title) > maxTitleLength {
		cut := strings.LastIndex(title[:maxTitleLength], " ")
		if cut < 1 {
			cut = maxTitleLength
		}
		title = strings.TrimSpace(title[:cut]) + "..."
	}

	return title
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, c := range s {
		if c >= 'a' && c <= 'z' {
			return false
		}
		if c >= 'A' && c <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}
