// ABOUTME: Request DTOs for the text derivation endpoints
// ABOUTME: Summarize, keywords and audio request bodies with validation

package requests

import (
	"errors"
	"strings"
)

// Summarize is the body of POST /summarize.
type Summarize struct {
	// Content is the article body text
	Content string `json:"content"`

	// Sentences is the summary length; 0 uses the server default
	Sentences int `json:"sentences"`
}

// Validate checks the request fields.
func (r *Summarize) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("content is required")
	}
	if r.Sentences < 0 {
		return errors.New("sentences cannot be negative")
	}
	return nil
}

// Keywords is the body of POST /keywords.
type Keywords struct {
	// Content is the article body text
	Content string `json:"content"`

	// Count is the number of keyword phrases; 0 uses the server default
	Count int `json:"count"`
}

// Validate checks the request fields.
func (r *Keywords) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("content is required")
	}
	if r.Count < 0 {
		return errors.New("count cannot be negative")
	}
	return nil
}

// Audio is the body of POST /audio.
type Audio struct {
	// Text is the summary text to synthesize
	Text string `json:"text"`

	// Language selects the synthesis voice language
	Language string `json:"language"`

	// URL keys the audio cache; synthesis is the most expensive derivation
	URL string `json:"url"`
}

// Validate checks the request fields.
func (r *Audio) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("text is required")
	}
	if r.URL != "" && !strings.HasPrefix(r.URL, "http://") && !strings.HasPrefix(r.URL, "https://") {
		return errors.New("url must be absolute")
	}
	return nil
}
