// ABOUTME: Link discoverer finds candidate article URLs on category listing pages
// ABOUTME: Marker-based href filtering with dedupe, early stop and pagination window

package discover

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"insightink-api/core/interfaces"
	"insightink-api/pkg/sources"
)

// earlyStopFactor bounds the anchor scan on very large listing pages. The
// scan stops once this multiple of the requested window has been collected.
const earlyStopFactor = 4

// Discoverer extracts candidate article links from listing page markup.
type Discoverer struct {
	markers sources.Markers
	logger  interfaces.Logger
}

// NewDiscoverer creates a discoverer with the given marker vocabularies.
func NewDiscoverer(markers sources.Markers, logger interfaces.Logger) *Discoverer {
	return &Discoverer{
		markers: markers,
		logger:  logger,
	}
}

// Discover scans anchors in the listing markup and returns the (offset,
// limit) window of qualifying article URLs, deduplicated in first-seen
// order. Relative paths are resolved against the scheme and host of baseURL.
func (d *Discoverer) Discover(rawHTML, baseURL string, offset, limit int) []string {
	links := d.collect(rawHTML, baseURL, (offset+limit)*earlyStopFactor)
	return window(links, offset, limit)
}

// collect gathers up to maxCandidates qualifying links in first-seen order.
func (d *Discoverer) collect(rawHTML, baseURL string, maxCandidates int) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		d.logger.Debug("Failed to parse listing markup", map[string]interface{}{
			"url":   baseURL,
			"error": err.Error(),
		})
		return nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		d.logger.Debug("Invalid base URL for link discovery", map[string]interface{}{
			"url":   baseURL,
			"error": err.Error(),
		})
		return nil
	}
	root := base.Scheme + "://" + base.Host

	var links []string
	seen := make(map[string]struct{})

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if !d.qualifies(href) {
			return true
		}

		resolved, ok := resolve(href, root)
		if !ok {
			return true
		}
		if _, dup := seen[resolved]; dup {
			return true
		}
		seen[resolved] = struct{}{}
		links = append(links, resolved)

		return len(links) < maxCandidates
	})

	return links
}

// qualifies applies the include and exclude marker vocabularies to a raw
// href value. Exclusion wins regardless of any include match.
func (d *Discoverer) qualifies(href string) bool {
	if href == "" {
		return false
	}
	lower := strings.ToLower(href)

	for _, marker := range d.markers.Exclude {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	for _, marker := range d.markers.Include {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// resolve turns an href into an absolute URL. Root-relative paths join the
// listing page's origin, absolute URLs pass through, everything else drops.
func resolve(href, root string) (string, bool) {
	switch {
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href, true
	case strings.HasPrefix(href, "/"):
		return root + href, true
	default:
		return "", false
	}
}

// window applies the pagination slice to the deduplicated candidate list.
func window(links []string, offset, limit int) []string {
	if offset >= len(links) {
		return nil
	}
	end := offset + limit
	if end > len(links) {
		end = len(links)
	}
	return links[offset:end]
}
