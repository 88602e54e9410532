// ABOUTME: Test mocks for the crawl package
// ABOUTME: Canned HTTP client, discoverer and extractor doubles

package crawl

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"insightink-api/core/domain"
	"insightink-api/core/interfaces"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

type mockResponse struct {
	body   string
	status int
}

func (m *mockResponse) StatusCode() int {
	if m.status == 0 {
		return 200
	}
	return m.status
}

func (m *mockResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

type mockHTTPClient struct {
	pages    map[string]string
	statuses map[string]int
	failures map[string]error
	calls    int64
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	atomic.AddInt64(&m.calls, 1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.failures[url]; ok {
		return nil, err
	}
	body, ok := m.pages[url]
	if !ok {
		return nil, errors.New("no canned page for " + url)
	}
	return &mockResponse{body: body, status: m.statuses[url]}, nil
}

type stubDiscoverer struct {
	links []string
}

func (s *stubDiscoverer) Discover(ctx context.Context, rawHTML, baseURL string, offset, limit int) []string {
	if limit < len(s.links) {
		return s.links[:limit]
	}
	return s.links
}

// stubExtractor returns an article per page body unless the body says to
// fail. A per-URL delay exercises out-of-order completion.
type stubExtractor struct {
	delays map[string]time.Duration
}

func (s *stubExtractor) Extract(rawHTML, pageURL string) *domain.Article {
	if d, ok := s.delays[pageURL]; ok {
		time.Sleep(d)
	}
	if strings.Contains(rawHTML, "not-an-article") {
		return nil
	}
	return &domain.Article{
		URL:     pageURL,
		Title:   "Title for " + pageURL,
		Content: rawHTML,
	}
}
