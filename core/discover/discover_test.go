package discover

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"insightink-api/pkg/sources"
)

func newTestDiscoverer() *Discoverer {
	return NewDiscoverer(sources.Default().Markers, &mockLogger{})
}

func anchors(hrefs ...string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, h := range hrefs {
		fmt.Fprintf(&b, `<a href=%q>link</a>`, h)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func TestDiscover_FiltersAndDeduplicates(t *testing.T) {
	html := anchors("/news/a1", "/news/a1", "/video/x", "/story/b2")

	got := newTestDiscoverer().Discover(html, "https://example.com/news", 0, 5)

	want := []string{
		"https://example.com/news/a1",
		"https://example.com/story/b2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscover_ExclusionWins(t *testing.T) {
	tests := []struct {
		name string
		href string
	}{
		{"video path under news", "/news/video/clip-123"},
		{"gallery", "/article/gallery/best-photos"},
		{"podcast", "/story/podcast/episode-4"},
		{"live reporting", "/news/live-reporting/updates"},
		{"javascript scheme", "javascript:void(0)"},
		{"fragment", "/news/a1#comments"},
	}

	d := newTestDiscoverer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Discover(anchors(tt.href), "https://example.com/", 0, 5)
			if len(got) != 0 {
				t.Errorf("Discover(%q) = %v, want no links", tt.href, got)
			}
		})
	}
}

func TestDiscover_URLResolution(t *testing.T) {
	html := anchors(
		"/news/relative",
		"https://other.example.org/news/absolute",
		"news/article/no-leading-slash",
	)

	got := newTestDiscoverer().Discover(html, "https://example.com/section/world", 0, 5)

	want := []string{
		"https://example.com/news/relative",
		"https://other.example.org/news/absolute",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscover_Window(t *testing.T) {
	html := anchors("/news/a", "/news/b", "/news/c", "/news/d", "/news/e")
	d := newTestDiscoverer()

	got := d.Discover(html, "https://example.com/", 2, 2)
	want := []string{"https://example.com/news/c", "https://example.com/news/d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("window (2,2) = %v, want %v", got, want)
	}

	if got := d.Discover(html, "https://example.com/", 10, 2); got != nil {
		t.Errorf("window past end = %v, want nil", got)
	}
}

func TestDiscover_EarlyStop(t *testing.T) {
	hrefs := make([]string, 50)
	for i := range hrefs {
		hrefs[i] = fmt.Sprintf("/news/item-%d", i)
	}

	d := newTestDiscoverer()
	links := d.collect(anchors(hrefs...), "https://example.com/", (0+2)*earlyStopFactor)

	if len(links) != 8 {
		t.Errorf("collect stopped at %d candidates, want %d", len(links), 8)
	}
}

const testFeed = `<?xml version="1.0"?>
<rss version="2.0"><channel>
	<title>Example News</title>
	<item><title>One</title><link>https://example.com/news/feed-1</link></item>
	<item><title>Two</title><link>https://example.com/news/feed-2</link></item>
	<item><title>Dup</title><link>https://example.com/news/a1</link></item>
</channel></rss>`

func TestFeedAssisted_SeedsFeedEntriesFirst(t *testing.T) {
	html := `<html><head>
		<link rel="alternate" type="application/rss+xml" href="/feed.xml">
	</head><body>
		<a href="/news/a1">one</a>
		<a href="/news/b2">two</a>
	</body></html>`

	client := &mockHTTPClient{responses: map[string]string{
		"https://example.com/feed.xml": testFeed,
	}}
	fa := NewFeedAssisted(newTestDiscoverer(), client, &mockLogger{})

	got := fa.Discover(context.Background(), html, "https://example.com/news", 0, 10)

	want := []string{
		"https://example.com/news/feed-1",
		"https://example.com/news/feed-2",
		"https://example.com/news/a1",
		"https://example.com/news/b2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestFeedAssisted_FallsBackWithoutFeed(t *testing.T) {
	html := anchors("/news/a1")
	fa := NewFeedAssisted(newTestDiscoverer(), &mockHTTPClient{}, &mockLogger{})

	got := fa.Discover(context.Background(), html, "https://example.com/", 0, 5)
	want := []string{"https://example.com/news/a1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestFeedAssisted_ErrorStatusFeedIgnored(t *testing.T) {
	html := `<html><head>
		<link rel="alternate" type="application/rss+xml" href="https://example.com/feed.xml">
	</head><body><a href="/news/a1">one</a></body></html>`

	// the feed URL serves an error page whose body looks like a feed
	client := &mockHTTPClient{
		responses: map[string]string{"https://example.com/feed.xml": testFeed},
		statuses:  map[string]int{"https://example.com/feed.xml": 500},
	}
	fa := NewFeedAssisted(newTestDiscoverer(), client, &mockLogger{})

	got := fa.Discover(context.Background(), html, "https://example.com/", 0, 5)
	want := []string{"https://example.com/news/a1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestFeedAssisted_FeedFetchFailure(t *testing.T) {
	html := `<html><head>
		<link rel="alternate" type="application/rss+xml" href="https://example.com/feed.xml">
	</head><body><a href="/news/a1">one</a></body></html>`

	// client has no canned response, so the fetch errors
	fa := NewFeedAssisted(newTestDiscoverer(), &mockHTTPClient{responses: map[string]string{}}, &mockLogger{})

	got := fa.Discover(context.Background(), html, "https://example.com/", 0, 5)
	want := []string{"https://example.com/news/a1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}
