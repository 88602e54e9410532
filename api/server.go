// ABOUTME: HTTP server wiring routes, CORS and middleware around the handlers
// ABOUTME: Plain net/http mux with graceful shutdown

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"

	"insightink-api/api/handlers"
	"insightink-api/api/middleware"
	"insightink-api/core/interfaces"
)

// Config tunes the HTTP server.
type Config struct {
	// Port is the listen port
	Port string

	// RateLimit is allowed requests per second per client
	RateLimit int

	// RateBurst is the limiter burst size
	RateBurst int
}

// Server is the API HTTP server.
type Server struct {
	httpServer *http.Server
	logger     interfaces.Logger
}

// NewServer builds the route table and middleware chain.
func NewServer(cfg Config, h *handlers.Handlers, logger interfaces.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/crawl", h.Crawl)
	mux.HandleFunc("/summarize", h.Summarize)
	mux.HandleFunc("/keywords", h.Keywords)
	mux.HandleFunc("/audio", h.Audio)
	mux.HandleFunc("/sources", h.Sources)
	mux.HandleFunc("/healthz", h.Health)

	var handler http.Handler = mux
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		handler = middleware.RateLimit(limiter)(handler)
	}
	handler = middleware.RequestLogging(logger)(handler)
	handler = cors.AllowAll().Handler(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: handler,
			// crawls can legitimately run long, writes get a wide budget
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Start listens and serves until Shutdown or a listener error.
func (s *Server) Start() error {
	s.logger.Info("API server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("API server shutting down", nil)
	return s.httpServer.Shutdown(ctx)
}
