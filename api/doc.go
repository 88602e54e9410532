// Package api provides the HTTP API layer for the Insight Ink application.
// It exposes the crawl pipeline and the text utilities over plain JSON
// endpoints built on the standard net/http mux.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: route table, middleware chain and server lifecycle
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//   - POST /crawl: crawl a category listing page into summarized articles
//   - POST /summarize: summarize raw text
//   - POST /keywords: extract keywords from raw text
//   - POST /audio: synthesize spoken audio for a summary
//   - GET /sources: the configured source catalog
//   - GET /healthz: liveness probe
//
// Request DTOs validate themselves at the boundary; handlers map domain
// error types onto status codes (validation failures to 400, upstream
// collaborator failures to 502).
//
// # Middleware
//
// Every request passes through CORS handling, request logging with a
// generated request ID, and a per-client token bucket rate limiter.
//
// # Usage Example
//
//	srv := api.NewServer(api.Config{
//	    Port:      "8000",
//	    RateLimit: 5,
//	    RateBurst: 10,
//	}, handlers, logger)
//	go srv.Start()
package api
