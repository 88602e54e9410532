// ABOUTME: Request DTOs for the crawl endpoint
// ABOUTME: Validated at the API boundary before reaching the pipeline

package requests

import (
	"errors"
	"net/url"

	"insightink-api/core/domain"
)

// maxArticlesCeiling bounds a single crawl so one request cannot tie up the
// worker pool on an enormous batch.
const maxArticlesCeiling = 30

// CrawlArticles is the body of POST /crawl.
type CrawlArticles struct {
	// URL is the category listing page to crawl
	URL string `json:"url"`

	// MaxArticles is the target article count
	MaxArticles int `json:"maxArticles"`

	// Offset skips already-seen candidates for load-more pagination
	Offset int `json:"offset"`

	// Language is the session language; non-English translates display text
	Language string `json:"language"`
}

// Validate checks the request fields.
func (r *CrawlArticles) Validate() error {
	if r.URL == "" {
		return errors.New("url is required")
	}
	parsed, err := url.Parse(r.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("url must be absolute")
	}
	if r.MaxArticles < 1 {
		return errors.New("maxArticles must be positive")
	}
	if r.MaxArticles > maxArticlesCeiling {
		return errors.New("maxArticles is too large")
	}
	if r.Offset < 0 {
		return errors.New("offset cannot be negative")
	}
	return nil
}

// ToCrawlRequest maps the DTO onto the domain request.
func (r *CrawlArticles) ToCrawlRequest() domain.CrawlRequest {
	return domain.CrawlRequest{
		SourceURL:   r.URL,
		MaxArticles: r.MaxArticles,
		Offset:      r.Offset,
	}
}
