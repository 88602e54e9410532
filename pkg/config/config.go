// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, crawl and collaborator settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Crawl contains crawl pipeline tuning
	Crawl CrawlConfig

	// Pipeline contains summarizer and keyword defaults
	Pipeline PipelineConfig

	// Translate contains translation collaborator configuration
	Translate TranslateConfig

	// Speech contains text-to-speech configuration
	Speech SpeechConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per second per client
	RateLimit int

	// RateBurst is the rate limiter burst size
	RateBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/sqlite/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// CrawlConfig holds crawl pipeline tuning
type CrawlConfig struct {
	// Workers is the bounded concurrency for article extraction
	Workers int

	// ListingTimeoutSec is the fetch budget for listing pages
	ListingTimeoutSec int

	// ArticleTimeoutSec is the fetch budget for article pages
	ArticleTimeoutSec int

	// SourcesFile optionally points to a YAML source catalog
	SourcesFile string

	// Enrich enables thumbnail metadata and accent color extraction
	Enrich bool
}

// PipelineConfig holds summarizer and keyword extractor defaults
type PipelineConfig struct {
	// SummarySentences is the default summary length
	SummarySentences int

	// KeywordCount is the default number of keywords per article
	KeywordCount int
}

// TranslateConfig holds translation collaborator configuration
type TranslateConfig struct {
	// Endpoint is the base URL of the translation service
	Endpoint string
}

// SpeechConfig holds text-to-speech configuration
type SpeechConfig struct {
	// Enabled exposes the audio endpoint; credentials are only needed on
	// the first synthesis request
	Enabled bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 5),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 10),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "insightink.db"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Crawl: CrawlConfig{
			Workers:           getEnvAsIntOrDefault("CRAWL_WORKERS", 6),
			ListingTimeoutSec: getEnvAsIntOrDefault("CRAWL_TIMEOUT_LIST", 20),
			ArticleTimeoutSec: getEnvAsIntOrDefault("CRAWL_TIMEOUT_ARTICLE", 12),
			SourcesFile:       getEnvOrDefault("SOURCES_FILE", ""),
			Enrich:            getEnvAsBoolOrDefault("ENRICH_ARTICLES", false),
		},
		Pipeline: PipelineConfig{
			SummarySentences: getEnvAsIntOrDefault("SUMMARY_SENTENCES", 6),
			KeywordCount:     getEnvAsIntOrDefault("KEYWORD_COUNT", 5),
		},
		Translate: TranslateConfig{
			Endpoint: getEnvOrDefault("TRANSLATE_ENDPOINT", ""),
		},
		Speech: SpeechConfig{
			Enabled: getEnvAsBoolOrDefault("TTS_ENABLED", true),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1 request per second")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'redis', 'sqlite' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Crawl.Workers < 1 {
		return errors.New("crawl workers must be at least 1")
	}

	if c.Crawl.ListingTimeoutSec < 1 || c.Crawl.ArticleTimeoutSec < 1 {
		return errors.New("crawl timeouts must be at least 1 second")
	}

	if c.Pipeline.SummarySentences < 1 {
		return errors.New("summary sentence count must be at least 1")
	}

	if c.Pipeline.KeywordCount < 1 {
		return errors.New("keyword count must be at least 1")
	}

	return nil
}
