// ABOUTME: Thumbnail accent color service using K-means clustering
// ABOUTME: Downloads the article thumbnail and extracts its prominent color

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp"

	"insightink-api/core/domain"
	"insightink-api/core/interfaces"
)

const (
	// defaultColorValue is the neutral gray used when extraction fails.
	defaultColorValue = 128

	colorCacheTTL    = 24 * time.Hour
	imageHTTPTimeout = 10 * time.Second
	imageUserAgent   = "Mozilla/5.0 (compatible; InsightInk/1.0)"
)

// ThumbnailColorService extracts a prominent accent color from article
// thumbnails for the presentation layer.
type ThumbnailColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
}

// NewThumbnailColorService creates a thumbnail color service.
func NewThumbnailColorService(deps interfaces.Dependencies) *ThumbnailColorService {
	return &ThumbnailColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: imageHTTPTimeout,
		},
	}
}

// ExtractColor returns the prominent color of the image at imageURL. Any
// failure degrades to the neutral default, never an error to the caller.
func (s *ThumbnailColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return defaultColor(), nil
	}

	cacheKey := "thumbColor:" + imageURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	color, err := s.extract(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Thumbnail color extraction failed", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = defaultColor()
	}

	if s.deps.Cache != nil {
		data := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(data), colorCacheTTL)
	}

	return color, nil
}

// extract downloads and clusters the image. The color libraries panic on
// some malformed images, so recovery maps panics onto the error path.
func (s *ThumbnailColorService) extract(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			color = nil
			err = fmt.Errorf("color extraction panic: %v", rec)
		}
	}()

	parsed, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}
	if strings.HasSuffix(strings.ToLower(parsed.Path), ".svg") {
		return nil, fmt.Errorf("svg images cannot be rasterized")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", imageUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching image", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}
	rgba := image.NewNRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		rgba,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(colors) == 0 {
		// masked clustering rejects some images outright, retry unmasked
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			rgba,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

func defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}
