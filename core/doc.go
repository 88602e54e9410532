// Package core contains the business logic for the Insight Ink API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Article, CrawlRequest)
// - extract: Article body and title extraction from raw markup
// - discover: Candidate article link discovery on listing pages
// - crawl: Category crawl orchestration over discover + extract
// - summarize: Extractive TF-IDF summarization
// - keywords: Frequency-based keyword and phrase extraction
// - translate: Translation collaborator client
// - speech: Text-to-speech collaborator client
// - derived: Per-(url, language, kind) cache for derived content
// - services: Page metadata and thumbnail color enrichment
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - A failed fetch or extraction degrades to a skipped item, never an abort
//
// # Usage Example
//
//	import (
//	    "insightink-api/core/crawl"
//	    "insightink-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	crawler := crawl.NewCrawler(deps, discoverer, extractor, crawl.DefaultOptions())
//	articles, err := crawler.CrawlCategory(ctx, domain.CrawlRequest{
//	    SourceURL:   "https://example.com/news",
//	    MaxArticles: 10,
//	})
package core
