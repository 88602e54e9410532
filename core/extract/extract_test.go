package extract

import (
	"strings"
	"testing"
)

const bodyParagraphs = `
<p>Stock markets rallied strongly on Monday as investors bet that the central bank would cut interest rates at its next meeting.</p>
<p>Short caption.</p>
<p>Analysts said the move reflected growing confidence that inflation has peaked and that monetary policy will loosen before the end of the year.</p>
<p>Bond yields fell across the board while technology shares led the gains in afternoon trading on both sides of the Atlantic.</p>`

func newTestExtractor() *Extractor {
	return NewExtractor(&mockLogger{}, NewHeuristicLocator())
}

func TestExtract_ArticlePage(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="Markets Rally On Rate Cut Hopes">
		<meta property="og:image" content="https://example.com/thumb.jpg">
		<title>Markets Rally - Example News</title>
	</head><body>
		<nav><p>Home News Sport Weather navigation menu with many links</p></nav>
		<div class="article-body">` + bodyParagraphs + `</div>
	</body></html>`

	article := newTestExtractor().Extract(html, "https://example.com/news/markets")
	if article == nil {
		t.Fatal("Extract returned nil for a valid article page")
	}

	if article.Title != "Markets Rally On Rate Cut Hopes" {
		t.Errorf("Title = %q, want og:title value", article.Title)
	}
	if article.URL != "https://example.com/news/markets" {
		t.Errorf("URL = %q", article.URL)
	}
	if article.Thumbnail != "https://example.com/thumb.jpg" {
		t.Errorf("Thumbnail = %q, want og:image value", article.Thumbnail)
	}
	if !strings.Contains(article.Content, "rallied strongly") {
		t.Error("Content missing body paragraph text")
	}
	if strings.Contains(article.Content, "Short caption") {
		t.Error("Content includes a paragraph under the length filter")
	}
	if strings.Contains(article.Content, "navigation menu") {
		t.Error("Content includes boilerplate from a stripped nav element")
	}
	if article.FetchedAt.IsZero() {
		t.Error("FetchedAt was not set")
	}
}

func TestExtract_TitlePriority(t *testing.T) {
	body := `<div class="story">` + bodyParagraphs + `</div>`

	tests := []struct {
		name string
		head string
		want string
	}{
		{
			name: "og title wins",
			head: `<meta property="og:title" content="OG Title Here">
				<meta name="title" content="Meta Title Here">
				<title>Doc Title Here</title>`,
			want: "OG Title Here",
		},
		{
			name: "meta title beats document title",
			head: `<meta name="title" content="Meta Title Here"><title>Doc Title Here</title>`,
			want: "Meta Title Here",
		},
		{
			name: "document title beats heading",
			head: `<title>Doc Title Here</title>`,
			want: "Doc Title Here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := "<html><head>" + tt.head + "</head><body>" + body + "</body></html>"
			article := newTestExtractor().Extract(html, "https://example.com/a")
			if article == nil {
				t.Fatal("Extract returned nil")
			}
			if article.Title != tt.want {
				t.Errorf("Title = %q, want %q", article.Title, tt.want)
			}
		})
	}
}

func TestExtract_HeadingFallback(t *testing.T) {
	html := `<html><body><h1>Heading Title</h1><div class="content">` +
		bodyParagraphs + `</div></body></html>`

	article := newTestExtractor().Extract(html, "https://example.com/a")
	if article == nil {
		t.Fatal("Extract returned nil")
	}
	if article.Title != "Heading Title" {
		t.Errorf("Title = %q, want first h1 text", article.Title)
	}
}

func TestExtract_TitleSynthesizedFromBody(t *testing.T) {
	html := `<html><body><div class="content">
		<p>The government announced a major new funding package, officials said during a briefing held on Monday morning.</p>
		<p>The money will be spread over five years and targets regional transport projects across the north of the country.</p>
	</div></body></html>`

	article := newTestExtractor().Extract(html, "https://example.com/a")
	if article == nil {
		t.Fatal("Extract returned nil")
	}
	if article.Title != "The government announced a major new funding package" {
		t.Errorf("Title = %q, want first sentence up to the comma", article.Title)
	}
}

func TestExtract_ThinPageRejected(t *testing.T) {
	html := `<html><head><title>Tag page</title></head><body>
		<div class="content"><p>Just a little bit of text, nowhere near enough.</p></div>
	</body></html>`

	if article := newTestExtractor().Extract(html, "https://example.com/tag/x"); article != nil {
		t.Errorf("Extract returned %+v for a page under the content minimum", article)
	}
}

func TestExtract_FallbackScanWithoutContainers(t *testing.T) {
	// no element carries a recognized class; the whole-page scan must run
	html := `<html><body><section>` + bodyParagraphs + `</section></body></html>`

	article := newTestExtractor().Extract(html, "https://example.com/a")
	if article == nil {
		t.Fatal("Extract returned nil when only the fallback scan could find the body")
	}
	if !strings.Contains(article.Content, "Bond yields fell") {
		t.Error("fallback scan missed a qualifying paragraph")
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "site suffix stripped",
			title: "Government unveils new transport funding plan - BBC News",
			want:  "Government unveils new transport funding plan",
		},
		{
			name:  "pipe suffix stripped",
			title: "Champions League final heads to extra time | Sky Sports",
			want:  "Champions League final heads to extra time",
		},
		{
			name:  "short head keeps separator",
			title: "Live - day three",
			want:  "Live - day three",
		},
		{
			name:  "all caps converted",
			title: "BREAKING NEWS FROM THE SUMMIT",
			want:  "Breaking News From The Summit",
		},
		{
			name:  "whitespace collapsed",
			title: "Spaced   out\n title",
			want:  "Spaced out title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanTitle(tt.title); got != tt.want {
				t.Errorf("cleanTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestCleanTitle_Truncation(t *testing.T) {
	long := strings.Repeat("word ", 40)
	got := cleanTitle(long)
	if len(got) > maxTitleLength+3 {
		t.Errorf("cleanTitle left %d characters, want at most %d", len(got), maxTitleLength+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated title %q missing ellipsis", got)
	}
}
