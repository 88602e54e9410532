// ABOUTME: HTTP client implementation with a browser user agent and charset detection
// ABOUTME: News sites vary in declared encodings, so bodies are transparently decoded to UTF-8

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"insightink-api/core/interfaces"
)

// browserUserAgent mimics a desktop browser; several news sites refuse
// requests from obvious bot agents.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// StandardHTTPClient implements the HTTPClient interface using the standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// The timeout is an upper bound; callers shorten it per request through the
// context deadline.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request. The response body is wrapped so that
// reads yield UTF-8 regardless of the page's declared or sniffed encoding.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode:  resp.StatusCode,
		body:        resp.Body,
		headers:     resp.Header,
		contentType: resp.Header.Get("Content-Type"),
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode  int
	body        io.ReadCloser
	headers     http.Header
	contentType string
	decoded     io.Reader
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body decoded to UTF-8. Encoding is determined
// from the Content-Type header and, failing that, sniffed from the content.
func (r *httpResponse) Body() io.ReadCloser {
	if r.decoded == nil {
		reader, err := charset.NewReader(r.body, r.contentType)
		if err != nil {
			// undetectable encoding: pass bytes through untouched
			reader = r.body
		}
		r.decoded = reader
	}
	return &decodedBody{reader: r.decoded, closer: r.body}
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// decodedBody pairs the decoding reader with the underlying body's closer.
type decodedBody struct {
	reader io.Reader
	closer io.Closer
}

func (b *decodedBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *decodedBody) Close() error {
	return b.closer.Close()
}
