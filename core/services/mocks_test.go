// ABOUTME: Test mocks for the services package
// ABOUTME: Collaborator doubles for the pipeline and enrichment tests

package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"insightink-api/core/domain"
	"insightink-api/core/interfaces"
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

// mockTranslator marks text so tests can tell translated output apart.
type mockTranslator struct {
	fail  bool
	calls int
}

func (m *mockTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	m.calls++
	if m.fail {
		return text, errors.New("translation service unavailable")
	}
	return "[" + targetLang + "] " + text, nil
}

type mockMetadataService struct {
	meta  *interfaces.PageMetadata
	calls int
}

func (m *mockMetadataService) ExtractMetadata(ctx context.Context, url string) (*interfaces.PageMetadata, error) {
	m.calls++
	if m.meta == nil {
		return nil, errors.New("no metadata")
	}
	return m.meta, nil
}

type mockColorService struct {
	color *domain.RGBColor
	calls int
}

func (m *mockColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	m.calls++
	if m.color == nil {
		return nil, errors.New("no color")
	}
	return m.color, nil
}

// stubDiscoverer and stubExtractor drive the crawler inside pipeline tests.
type stubDiscoverer struct {
	links []string
}

func (s *stubDiscoverer) Discover(ctx context.Context, rawHTML, baseURL string, offset, limit int) []string {
	return s.links
}

type stubExtractor struct{}

func (s *stubExtractor) Extract(rawHTML, pageURL string) *domain.Article {
	return &domain.Article{
		URL:     pageURL,
		Title:   "Title of " + pageURL,
		Content: rawHTML,
	}
}
