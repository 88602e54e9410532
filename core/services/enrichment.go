// ABOUTME: Enrichment service fills in thumbnails and accent colors on crawled articles
// ABOUTME: Combines the metadata scraper and thumbnail color extractor

package services

import (
	"context"
	"sync"

	"insightink-api/core/domain"
	"insightink-api/core/interfaces"
)

// enrichConcurrency bounds parallel metadata scrapes during a batch.
const enrichConcurrency = 5

// EnrichmentService augments extracted articles with presentation metadata.
type EnrichmentService struct {
	deps     interfaces.Dependencies
	metadata interfaces.MetadataService
	color    interfaces.ThumbnailColorService
}

// NewEnrichmentService creates an enrichment service from its parts.
func NewEnrichmentService(deps interfaces.Dependencies, metadata interfaces.MetadataService, color interfaces.ThumbnailColorService) *EnrichmentService {
	return &EnrichmentService{
		deps:     deps,
		metadata: metadata,
		color:    color,
	}
}

// EnrichArticle fills in the thumbnail and its accent color for a single
// article. Missing metadata leaves the article unchanged.
func (s *EnrichmentService) EnrichArticle(ctx context.Context, article *domain.Article) {
	if article == nil {
		return
	}

	if article.Thumbnail == "" && s.metadata != nil {
		meta, err := s.metadata.ExtractMetadata(ctx, article.URL)
		if err == nil && meta != nil {
			article.Thumbnail = meta.Thumbnail
		}
	}

	if article.Thumbnail != "" && s.color != nil {
		if color, err := s.color.ExtractColor(ctx, article.Thumbnail); err == nil {
			article.ThumbnailColor = color
		}
	}
}

// EnrichArticles enriches a batch concurrently. The slice is modified in
// place; order is untouched since each worker owns one index.
func (s *EnrichmentService) EnrichArticles(ctx context.Context, articles []domain.Article) {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, enrichConcurrency)

	for i := range articles {
		wg.Add(1)
		go func(a *domain.Article) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
				s.EnrichArticle(ctx, a)
			case <-ctx.Done():
			}
		}(&articles[i])
	}

	wg.Wait()
}
