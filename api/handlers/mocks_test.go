// ABOUTME: Test doubles for the handlers package
// ABOUTME: Builds a working pipeline over canned pages and stub collaborators

package handlers

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"insightink-api/core/crawl"
	"insightink-api/core/derived"
	"insightink-api/core/domain"
	"insightink-api/core/interfaces"
	"insightink-api/core/keywords"
	"insightink-api/core/services"
	"insightink-api/core/summarize"
	"insightink-api/pkg/sources"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

type mockResponse struct {
	body string
}

func (m *mockResponse) StatusCode() int          { return 200 }
func (m *mockResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

type mockHTTPClient struct {
	pages map[string]string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	body, ok := m.pages[url]
	if !ok {
		return nil, errors.New("no canned page for " + url)
	}
	return &mockResponse{body: body}, nil
}

type stubDiscoverer struct {
	links []string
}

func (s *stubDiscoverer) Discover(ctx context.Context, rawHTML, baseURL string, offset, limit int) []string {
	return s.links
}

type stubExtractor struct{}

func (s *stubExtractor) Extract(rawHTML, pageURL string) *domain.Article {
	return &domain.Article{URL: pageURL, Title: "Title", Content: rawHTML}
}

type mockSpeech struct {
	audio []byte
	fail  bool
	calls int
}

func (m *mockSpeech) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	m.calls++
	if m.fail {
		return nil, errors.New("synthesis backend down")
	}
	return m.audio, nil
}

const testContent = "Markets rose today. Investors cheered the news. " +
	"Analysts remain cautious about inflation risks. The central bank meets next week. " +
	"Growth forecasts were revised upward. Oil prices fell sharply. " +
	"Trading volume stayed high through the close."

func newTestHandlers(speech interfaces.SpeechSynthesizer) *Handlers {
	links := []string{"https://example.com/news/a", "https://example.com/news/b"}
	pages := map[string]string{"https://example.com/news": "listing"}
	for _, l := range links {
		pages[l] = testContent
	}

	deps := interfaces.Dependencies{
		HTTPClient: &mockHTTPClient{pages: pages},
		Logger:     &mockLogger{},
	}
	store := derived.NewStore(time.Hour)
	summarizer := summarize.NewSummarizer(summarize.DefaultOptions())
	keywordExtractor := keywords.NewExtractor(keywords.DefaultOptions())
	crawler := crawl.NewCrawler(deps, &stubDiscoverer{links: links}, &stubExtractor{}, crawl.DefaultOptions())
	pipeline := services.NewArticlePipeline(
		deps, crawler, summarizer, keywordExtractor, nil, nil, store,
		services.PipelineOptions{SummarySentences: 3, KeywordCount: 5},
	)

	return NewHandlers(
		pipeline, summarizer, keywordExtractor, speech, store,
		sources.Default(), &mockLogger{},
		Defaults{SummarySentences: 3, KeywordCount: 5},
	)
}
