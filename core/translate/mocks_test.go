// ABOUTME: Test mocks for the translate package
// ABOUTME: Configurable canned HTTP client and a no-op logger

package translate

import (
	"context"
	"errors"
	"io"
	"strings"

	"insightink-api/core/interfaces"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

type mockResponse struct {
	status int
	body   string
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
	status    int
	body      string
	failAll   bool
	requested []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.requested = append(m.requested, url)
	if m.failAll {
		return nil, errors.New("connection refused")
	}
	return &mockResponse{status: m.status, body: m.body}, nil
}
