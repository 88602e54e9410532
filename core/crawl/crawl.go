// ABOUTME: Category crawler orchestrates link discovery and article extraction
// ABOUTME: Bounded worker pool with results reassembled in discovery order

package crawl

import (
	"context"
	"io"
	"sync"
	"time"

	"insightink-api/core/domain"
	"insightink-api/core/errors"
	"insightink-api/core/interfaces"
)

const (
	// overFetchFactor widens the discovery window so extraction failures
	// do not starve the result below the requested article count.
	overFetchFactor = 3

	defaultWorkers        = 6
	defaultListingTimeout = 20 * time.Second
	defaultArticleTimeout = 12 * time.Second
)

// ArticleExtractor turns raw markup into an article record, or nil when the
// page is not an article.
type ArticleExtractor interface {
	Extract(rawHTML, pageURL string) *domain.Article
}

// LinkDiscoverer finds candidate article links on a listing page.
type LinkDiscoverer interface {
	Discover(ctx context.Context, rawHTML, baseURL string, offset, limit int) []string
}

// Options tunes crawl concurrency and fetch budgets.
type Options struct {
	// Workers bounds concurrent article fetches
	Workers int

	// ListingTimeout is the fetch budget for the category page
	ListingTimeout time.Duration

	// ArticleTimeout is the per-article fetch budget
	ArticleTimeout time.Duration
}

// DefaultOptions returns the standard crawl tuning.
func DefaultOptions() Options {
	return Options{
		Workers:        defaultWorkers,
		ListingTimeout: defaultListingTimeout,
		ArticleTimeout: defaultArticleTimeout,
	}
}

// Crawler fetches a category listing page and extracts articles from the
// links it discovers.
type Crawler struct {
	deps       interfaces.Dependencies
	discoverer LinkDiscoverer
	extractor  ArticleExtractor
	opts       Options
}

// NewCrawler creates a crawler. Zero-valued option fields fall back to the
// defaults.
func NewCrawler(deps interfaces.Dependencies, discoverer LinkDiscoverer, extractor ArticleExtractor, opts Options) *Crawler {
	if opts.Workers < 1 {
		opts.Workers = defaultWorkers
	}
	if opts.ListingTimeout <= 0 {
		opts.ListingTimeout = defaultListingTimeout
	}
	if opts.ArticleTimeout <= 0 {
		opts.ArticleTimeout = defaultArticleTimeout
	}
	return &Crawler{
		deps:       deps,
		discoverer: discoverer,
		extractor:  extractor,
		opts:       opts,
	}
}

// CrawlCategory fetches the listing page, discovers candidate links and
// extracts up to MaxArticles article records, preserving discovery order.
// A listing fetch failure yields an empty result, never an error: one bad
// source must not abort a batch.
func (c *Crawler) CrawlCategory(ctx context.Context, req domain.CrawlRequest) ([]domain.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, &errors.ValidationError{Field: "request", Message: err.Error()}
	}

	listing, err := c.fetchPage(ctx, req.SourceURL, c.opts.ListingTimeout)
	if err != nil {
		c.deps.Logger.Warn("Listing page fetch failed", map[string]interface{}{
			"url":   req.SourceURL,
			"error": err.Error(),
		})
		return []domain.Article{}, nil
	}

	links := c.discoverer.Discover(ctx, listing, req.SourceURL, req.Offset, req.MaxArticles*overFetchFactor)
	if len(links) == 0 {
		c.deps.Logger.Info("No candidate links discovered", map[string]interface{}{
			"url": req.SourceURL,
		})
		return []domain.Article{}, nil
	}

	results := c.extractAll(ctx, links)

	articles := make([]domain.Article, 0, req.MaxArticles)
	for _, a := range results {
		if a == nil {
			continue
		}
		articles = append(articles, *a)
		if len(articles) == req.MaxArticles {
			break
		}
	}

	c.deps.Logger.Info("Crawl finished", map[string]interface{}{
		"url":        req.SourceURL,
		"candidates": len(links),
		"articles":   len(articles),
	})
	return articles, nil
}

// extractAll fetches and extracts every candidate with bounded concurrency.
// The result slice is indexed by discovery order; failed candidates are nil.
func (c *Crawler) extractAll(ctx context.Context, links []string) []*domain.Article {
	results := make([]*domain.Article, len(links))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < c.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = c.extractOne(ctx, links[idx])
			}
		}()
	}

dispatch:
	for idx := range links {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// extractOne fetches a single candidate page and runs the extractor over it.
// Every failure path degrades to nil.
func (c *Crawler) extractOne(ctx context.Context, pageURL string) *domain.Article {
	if ctx.Err() != nil {
		return nil
	}

	rawHTML, err := c.fetchPage(ctx, pageURL, c.opts.ArticleTimeout)
	if err != nil {
		c.deps.Logger.Debug("Candidate fetch failed", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return nil
	}

	return c.extractor.Extract(rawHTML, pageURL)
}

// fetchPage performs a bounded GET and reads the full decoded body.
func (c *Crawler) fetchPage(ctx context.Context, pageURL string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", &errors.ExternalAPIError{
			API:        "source",
			StatusCode: resp.StatusCode(),
			URL:        pageURL,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", err
	}
	return string(body), nil
}
