// ABOUTME: Article pipeline service wiring the crawler to the derivation stages
// ABOUTME: Summaries, keywords and translations are memoized per url and language

package services

import (
	"context"
	"encoding/json"

	"insightink-api/core/crawl"
	"insightink-api/core/derived"
	"insightink-api/core/domain"
	"insightink-api/core/interfaces"
	"insightink-api/core/keywords"
	"insightink-api/core/summarize"
)

// PipelineOptions carries the per-article derivation defaults.
type PipelineOptions struct {
	// SummarySentences is the summary length in sentences
	SummarySentences int

	// KeywordCount is the number of keyword phrases per article
	KeywordCount int
}

// ArticlePipeline crawls category pages and augments each article with its
// derived fields. The pipeline stages are pure; memoization lives here.
type ArticlePipeline struct {
	deps       interfaces.Dependencies
	crawler    *crawl.Crawler
	summarizer *summarize.Summarizer
	keywords   *keywords.Extractor
	translator interfaces.Translator
	enricher   *EnrichmentService
	store      *derived.Store
	opts       PipelineOptions
}

// NewArticlePipeline assembles the pipeline. The translator and enricher
// may be nil; those stages are skipped.
func NewArticlePipeline(
	deps interfaces.Dependencies,
	crawler *crawl.Crawler,
	summarizer *summarize.Summarizer,
	keywordExtractor *keywords.Extractor,
	translator interfaces.Translator,
	enricher *EnrichmentService,
	store *derived.Store,
	opts PipelineOptions,
) *ArticlePipeline {
	if opts.SummarySentences < 1 {
		opts.SummarySentences = 6
	}
	if opts.KeywordCount < 1 {
		opts.KeywordCount = 5
	}
	return &ArticlePipeline{
		deps:       deps,
		crawler:    crawler,
		summarizer: summarizer,
		keywords:   keywordExtractor,
		translator: translator,
		enricher:   enricher,
		store:      store,
		opts:       opts,
	}
}

// Crawl runs a category crawl and augments every article with summary,
// keywords and, for non-English sessions, translated display text.
func (p *ArticlePipeline) Crawl(ctx context.Context, req domain.CrawlRequest, language string) ([]domain.Article, error) {
	articles, err := p.crawler.CrawlCategory(ctx, req)
	if err != nil {
		return nil, err
	}

	for i := range articles {
		p.Augment(ctx, &articles[i], language)
	}

	if p.enricher != nil {
		p.enricher.EnrichArticles(ctx, articles)
	}

	return articles, nil
}

// Augment fills in the derived fields of one article in place.
func (p *ArticlePipeline) Augment(ctx context.Context, article *domain.Article, language string) {
	article.Summary = p.Summarize(article.URL, article.Content)
	article.Keywords = p.Keywords(article.URL, article.Content)

	if language != "" && language != "en" && p.translator != nil {
		article.Title = p.translate(ctx, article.URL+"#title", article.Title, language)
		article.Summary = p.translate(ctx, article.URL, article.Summary, language)
	}
}

// Summarize returns the memoized summary for the article content.
func (p *ArticlePipeline) Summarize(url, content string) string {
	if cached, ok := p.store.Get(url, "en", derived.KindSummary); ok {
		return string(cached)
	}
	summary := p.summarizer.Summarize(content, p.opts.SummarySentences)
	p.store.Set(url, "en", derived.KindSummary, []byte(summary))
	return summary
}

// Keywords returns the memoized keyword phrases for the article content.
func (p *ArticlePipeline) Keywords(url, content string) []string {
	if cached, ok := p.store.Get(url, "en", derived.KindKeywords); ok {
		var kws []string
		if err := json.Unmarshal(cached, &kws); err == nil {
			return kws
		}
	}
	kws := p.keywords.Extract(content, p.opts.KeywordCount)
	if data, err := json.Marshal(kws); err == nil {
		p.store.Set(url, "en", derived.KindKeywords, data)
	}
	return kws
}

// ClearDerived drops all memoized derivations, for language switches.
func (p *ArticlePipeline) ClearDerived() {
	p.store.Clear()
}

// translate memoizes one translation; failures keep the original text.
func (p *ArticlePipeline) translate(ctx context.Context, key, text, language string) string {
	if text == "" {
		return text
	}
	if cached, ok := p.store.Get(key, language, derived.KindTranslation); ok {
		return string(cached)
	}
	out, err := p.translator.Translate(ctx, text, language)
	if err != nil {
		return text
	}
	p.store.Set(key, language, derived.KindTranslation, []byte(out))
	return out
}
