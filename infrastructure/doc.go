// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache with TTL support
// - cache/redis: Redis-backed cache storing JSON documents via ReJSON
// - cache/sqlite: File-based cache that survives restarts
// - http/standard: HTTP client with a browser user agent and charset detection
// - logger/logrus: Structured logger implementation backed by logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// The HTTP client deliberately carries no retry logic: a failed fetch of a
// news page is absorbed by the crawler as "skip this item", and retrying
// against arbitrary third-party sites only burns the crawl budget.
package infrastructure
