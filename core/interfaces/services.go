// ABOUTME: Service interfaces for external collaborators of the crawl pipeline
// ABOUTME: Translation, speech synthesis and page enrichment are consumed, not produced

package interfaces

import (
	"context"

	"insightink-api/core/domain"
)

// Translator converts text into a target language. Implementations must
// degrade gracefully: when the backing service is unavailable the original
// text is returned alongside the error.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// SpeechSynthesizer turns text into spoken audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, languageCode string) ([]byte, error)
}

// PageMetadata holds presentation metadata scraped from an article page.
type PageMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SiteName    string   `json:"siteName"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
}

// MetadataService extracts Open Graph style metadata from article URLs.
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string) (*PageMetadata, error)
}

// ThumbnailColorService extracts a prominent accent color from an image URL.
type ThumbnailColorService interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}
