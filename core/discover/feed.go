// ABOUTME: RSS-assisted link discovery for listing pages that advertise a feed
// ABOUTME: Feed entry links are seeded ahead of the anchor scan results

package discover

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"insightink-api/core/interfaces"
)

// FeedAssisted wraps a Discoverer and, when the listing page advertises an
// RSS or Atom alternate, seeds candidate links from the feed before the
// anchor scan results. Feed entries carry cleaner article URLs than listing
// markup, so they go first.
type FeedAssisted struct {
	base   *Discoverer
	client interfaces.HTTPClient
	logger interfaces.Logger
	parser *gofeed.Parser
}

// NewFeedAssisted creates a feed-assisted discoverer.
func NewFeedAssisted(base *Discoverer, client interfaces.HTTPClient, logger interfaces.Logger) *FeedAssisted {
	return &FeedAssisted{
		base:   base,
		client: client,
		logger: logger,
		parser: gofeed.NewParser(),
	}
}

// Discover returns the (offset, limit) window over feed entry links followed
// by anchor scan links, deduplicated in that order. Feed failures fall back
// to the plain anchor scan.
func (f *FeedAssisted) Discover(ctx context.Context, rawHTML, baseURL string, offset, limit int) []string {
	maxCandidates := (offset + limit) * earlyStopFactor

	var links []string
	seen := make(map[string]struct{})

	for _, link := range f.feedLinks(ctx, rawHTML, baseURL) {
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
		if len(links) >= maxCandidates {
			break
		}
	}

	for _, link := range f.base.collect(rawHTML, baseURL, maxCandidates) {
		if len(links) >= maxCandidates {
			break
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}

	return window(links, offset, limit)
}

// feedLinks parses the first advertised feed and returns its entry links.
func (f *FeedAssisted) feedLinks(ctx context.Context, rawHTML, baseURL string) []string {
	feedURL := findFeedURL(rawHTML, baseURL)
	if feedURL == "" {
		return nil
	}

	resp, err := f.client.Get(ctx, feedURL)
	if err != nil {
		f.logger.Debug("Failed to fetch advertised feed", map[string]interface{}{
			"feed":  feedURL,
			"error": err.Error(),
		})
		return nil
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		f.logger.Debug("Advertised feed returned error status", map[string]interface{}{
			"feed":   feedURL,
			"status": resp.StatusCode(),
		})
		return nil
	}

	feed, err := f.parser.Parse(resp.Body())
	if err != nil {
		f.logger.Debug("Failed to parse advertised feed", map[string]interface{}{
			"feed":  feedURL,
			"error": err.Error(),
		})
		return nil
	}

	links := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		link := strings.TrimSpace(item.Link)
		if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
			links = append(links, link)
		}
	}
	return links
}

// findFeedURL locates the first RSS or Atom alternate link in the page head.
func findFeedURL(rawHTML, baseURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	sel := doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).First()
	href, ok := sel.Attr("href")
	if !ok {
		return ""
	}
	href = strings.TrimSpace(href)

	resolved, ok := resolveAgainst(href, baseURL)
	if !ok {
		return ""
	}
	return resolved
}

// resolveAgainst resolves an href against the full base URL, not just its
// origin, since feed links are often listing-relative.
func resolveAgainst(href, baseURL string) (string, bool) {
	if href == "" {
		return "", false
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href, true
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}
