// ABOUTME: Main entry point for the InsightInk API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"insightink-api/api"
	"insightink-api/api/handlers"
	"insightink-api/core/crawl"
	"insightink-api/core/derived"
	"insightink-api/core/discover"
	"insightink-api/core/extract"
	"insightink-api/core/interfaces"
	"insightink-api/core/keywords"
	"insightink-api/core/services"
	"insightink-api/core/speech"
	"insightink-api/core/summarize"
	"insightink-api/core/translate"
	"insightink-api/infrastructure/cache/memory"
	"insightink-api/infrastructure/cache/redis"
	"insightink-api/infrastructure/cache/sqlite"
	stdhttp "insightink-api/infrastructure/http/standard"
	logruslogger "insightink-api/infrastructure/logger/logrus"
	"insightink-api/pkg/config"
	"insightink-api/pkg/sources"
)

// derivedTTL bounds how long summaries, keywords, translations and audio
// stay memoized for a given article URL.
const derivedTTL = time.Hour

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New()
	logger.Info("Starting InsightInk API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	cache := buildCache(cfg, logger)
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	catalog, err := sources.LoadOrDefault(cfg.Crawl.SourcesFile)
	if err != nil {
		log.Fatalf("Failed to load source catalog: %v", err)
	}

	// Crawl pipeline
	discoverer := discover.NewFeedAssisted(
		discover.NewDiscoverer(catalog.Markers, logger),
		httpClient,
		logger,
	)
	extractor := extract.NewExtractor(logger)
	crawler := crawl.NewCrawler(deps, discoverer, extractor, crawl.Options{
		Workers:        cfg.Crawl.Workers,
		ListingTimeout: time.Duration(cfg.Crawl.ListingTimeoutSec) * time.Second,
		ArticleTimeout: time.Duration(cfg.Crawl.ArticleTimeoutSec) * time.Second,
	})

	summarizer := summarize.NewSummarizer(summarize.Options{})
	keywordExtractor := keywords.NewExtractor(keywords.Options{})
	store := derived.NewStore(derivedTTL)

	var translator interfaces.Translator
	if cfg.Translate.Endpoint != "" {
		translator = translate.NewClient(cfg.Translate.Endpoint, deps)
		logger.Info("Translation enabled", map[string]interface{}{
			"endpoint": cfg.Translate.Endpoint,
		})
	}

	var enricher *services.EnrichmentService
	if cfg.Crawl.Enrich {
		enricher = services.NewEnrichmentService(
			deps,
			services.NewMetadataService(deps),
			services.NewThumbnailColorService(deps),
		)
		logger.Info("Article enrichment enabled", nil)
	}

	pipeline := services.NewArticlePipeline(
		deps,
		crawler,
		summarizer,
		keywordExtractor,
		translator,
		enricher,
		store,
		services.PipelineOptions{
			SummarySentences: cfg.Pipeline.SummarySentences,
			KeywordCount:     cfg.Pipeline.KeywordCount,
		},
	)

	var synthesizer interfaces.SpeechSynthesizer
	var speechService *speech.Service
	if cfg.Speech.Enabled {
		speechService = speech.NewService(deps)
		synthesizer = speechService
	}

	h := handlers.NewHandlers(
		pipeline,
		summarizer,
		keywordExtractor,
		synthesizer,
		store,
		catalog,
		logger,
		handlers.Defaults{
			SummarySentences: cfg.Pipeline.SummarySentences,
			KeywordCount:     cfg.Pipeline.KeywordCount,
		},
	)

	srv := api.NewServer(api.Config{
		Port:      cfg.Server.Port,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	}, h, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if speechService != nil {
		if err := speechService.Close(); err != nil {
			logger.Warn("Closing speech client", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Server stopped", nil)
}

// buildCache selects the cache backend, falling back to memory when the
// configured backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}
