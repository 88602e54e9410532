// ABOUTME: Article domain model represents a scraped news article with derived fields
// ABOUTME: Provides validation logic to ensure article data integrity

package domain

import (
	"errors"
	"net/url"
	"time"
)

// MinContentLength is the minimum body length for an article to be
// considered valid. Pages under this threshold are almost never articles.
const MinContentLength = 150

// Article represents a single extracted news article.
type Article struct {
	// URL is the canonical source URL; unique within a crawl session
	URL string `json:"url"`

	// Title is the extracted headline
	Title string `json:"title"`

	// Content is the whitespace-normalized body text
	Content string `json:"content"`

	// FetchedAt is when the article was extracted; display aging only
	FetchedAt time.Time `json:"fetchedAt"`

	// Summary is derived from Content by the summarizer; empty until set
	Summary string `json:"summary,omitempty"`

	// Keywords is the ordered list of derived topic phrases
	Keywords []string `json:"keywords,omitempty"`

	// Thumbnail is the og:image URL when the page advertises one
	Thumbnail string `json:"thumbnail,omitempty"`

	// ThumbnailColor is the accent color extracted from the thumbnail
	ThumbnailColor *RGBColor `json:"thumbnailColor,omitempty"`
}

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Validate checks if the article has valid required fields
func (a *Article) Validate() error {
	if a.URL == "" {
		return errors.New("article URL cannot be empty")
	}

	if _, err := url.Parse(a.URL); err != nil {
		return errors.New("article URL is not valid format")
	}

	if len(a.Content) <= MinContentLength {
		return errors.New("article content below minimum length")
	}

	return nil
}

// CrawlRequest describes one crawl of a category listing page.
type CrawlRequest struct {
	// SourceURL is the listing page to crawl
	SourceURL string

	// MaxArticles is the number of successful extractions to stop at
	MaxArticles int

	// Offset skips already-seen candidate links for pagination
	Offset int
}

// Validate checks if the crawl request has valid fields
func (r *CrawlRequest) Validate() error {
	if r.SourceURL == "" {
		return errors.New("source URL cannot be empty")
	}

	parsed, err := url.Parse(r.SourceURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("source URL is not valid format")
	}

	if r.MaxArticles < 1 {
		return errors.New("maxArticles must be positive")
	}

	if r.Offset < 0 {
		return errors.New("offset cannot be negative")
	}

	return nil
}
