// ABOUTME: Test mocks for the discover package
// ABOUTME: Provides a canned-response HTTP client and a no-op logger

package discover

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

func (m *mockResponse) StatusCode() int        { return m.status }
func (m *mockResponse) Body() io.ReadCloser    { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

type mockHTTPClient struct {
	responses map[string]string
	statuses  map[string]int
	requested []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.requested = append(m.requested, url)
	body, ok := m.responses[url]
	if !ok {
		return nil, errors.New("no canned response for " + url)
	}
	status := m.statuses[url]
	if status == 0 {
		status = 200
	}
	return &mockResponse{status: status, body: body}, nil
}
