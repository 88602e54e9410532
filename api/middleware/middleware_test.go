package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type recordingLogger struct {
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.infos = append(l.infos, msg)
}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warns = append(l.warns, msg)
}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.errors = append(l.errors, msg)
}

func TestRequestLogging_LogsStartAndCompletion(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if len(logger.infos) != 2 {
		t.Errorf("logged %d info messages, want request start and completion", len(logger.infos))
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
	if len(logger.errors) != 0 {
		t.Errorf("unexpected error logs: %v", logger.errors)
	}
}

func TestRequestLogging_ServerErrorLogged(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/crawl", nil))

	if len(logger.errors) != 1 {
		t.Errorf("logged %d error messages, want 1", len(logger.errors))
	}
}

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	limiter := NewRateLimiter(1, 3)
	handler := RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d rejected within burst: %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("request past burst = %d, want 429", rec.Code)
	}
}

func TestRateLimit_PerClientIsolation(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	handler := RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(httptest.NewRecorder(), first)

	rec := httptest.NewRecorder()
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	handler.ServeHTTP(rec, second)

	if rec.Code != http.StatusOK {
		t.Errorf("second client blocked by first client's bucket: %d", rec.Code)
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "10.0.0.1:5000", nil, "10.0.0.1"},
		{"x-forwarded-for", "10.0.0.1:5000", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "203.0.113.9"},
		{"x-real-ip", "10.0.0.1:5000", map[string]string{"X-Real-IP": "203.0.113.9"}, "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := extractIP(req); got != tt.want {
				t.Errorf("extractIP = %q, want %q", got, tt.want)
			}
		})
	}
}
