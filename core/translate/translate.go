// ABOUTME: Translation client for a Lingva style HTTP endpoint
// ABOUTME: Sentence-aligned chunking with graceful degradation to the original text

package translate

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"insightink-api/core/errors"
	"insightink-api/core/interfaces"
	"insightink-api/pkg/textutil"
)

// maxChunkLength keeps each request under the endpoint's query limit.
// Chunks break on sentence boundaries so the service sees whole sentences.
const maxChunkLength = 4500

// sourceLanguage is auto-detect on Lingva style endpoints.
const sourceLanguage = "auto"

// Client translates text through a Lingva style endpoint
// (GET {endpoint}/api/v1/{source}/{target}/{text}).
type Client struct {
	endpoint string
	deps     interfaces.Dependencies
}

// NewClient creates a translation client. An empty endpoint disables
// translation: every call passes the original text through.
func NewClient(endpoint string, deps interfaces.Dependencies) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		deps:     deps,
	}
}

// Translate converts text into the target language. English targets and
// empty input pass through unchanged. On any service failure the original
// text is returned alongside the error, so callers degrade instead of
// dropping content.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" || targetLang == "" || targetLang == "en" {
		return text, nil
	}
	if c.endpoint == "" {
		return text, nil
	}

	var translated []string
	for _, chunk := range chunkSentences(text, maxChunkLength) {
		out, err := c.translateChunk(ctx, chunk, targetLang)
		if err != nil {
			c.deps.Logger.Warn("Translation failed, keeping original text", map[string]interface{}{
				"target": targetLang,
				"error":  err.Error(),
			})
			return text, err
		}
		translated = append(translated, out)
	}

	return strings.Join(translated, " "), nil
}

type lingvaResponse struct {
	Translation string `json:"translation"`
}

func (c *Client) translateChunk(ctx context.Context, chunk, targetLang string) (string, error) {
	requestURL := c.endpoint + "/api/v1/" + sourceLanguage + "/" +
		url.PathEscape(targetLang) + "/" + url.PathEscape(chunk)

	resp, err := c.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return "", errors.WrapError(err, "translation request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return "", &errors.ExternalAPIError{
			API:        "translate",
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", errors.WrapError(err, "reading translation response")
	}

	var parsed lingvaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.WrapError(err, "decoding translation response")
	}
	if parsed.Translation == "" {
		return "", &errors.ExternalAPIError{
			API:     "translate",
			Message: "empty translation",
		}
	}
	return parsed.Translation, nil
}

// chunkSentences groups sentences into chunks no longer than limit. A single
// sentence over the limit becomes its own chunk rather than being split
// mid-sentence.
func chunkSentences(text string, limit int) []string {
	sentences := textutil.Sentences(text)
	if len(sentences) == 0 {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, s := range sentences {
		if current.Len() > 0 && current.Len()+len(s)+1 > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(s)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
