// ABOUTME: HTTP handlers exposing the crawl and derivation pipeline
// ABOUTME: JSON in and out, with the uniform error body on every failure path

package handlers

import (
	"encoding/json"
	"net/http"

	"insightink-api/api/dto/responses"
	"insightink-api/core/derived"
	"insightink-api/core/interfaces"
	"insightink-api/core/keywords"
	"insightink-api/core/services"
	"insightink-api/core/summarize"
	"insightink-api/pkg/sources"
)

// Defaults carries the server-side derivation defaults applied when a
// request leaves the knob at zero.
type Defaults struct {
	SummarySentences int
	KeywordCount     int
}

// Handlers holds the pipeline pieces behind the HTTP surface.
type Handlers struct {
	pipeline   *services.ArticlePipeline
	summarizer *summarize.Summarizer
	keywords   *keywords.Extractor
	speech     interfaces.SpeechSynthesizer
	store      *derived.Store
	catalog    *sources.Catalog
	logger     interfaces.Logger
	defaults   Defaults
}

// NewHandlers creates the handler set. The speech synthesizer may be nil;
// the audio endpoint then reports unavailability.
func NewHandlers(
	pipeline *services.ArticlePipeline,
	summarizer *summarize.Summarizer,
	keywordExtractor *keywords.Extractor,
	speech interfaces.SpeechSynthesizer,
	store *derived.Store,
	catalog *sources.Catalog,
	logger interfaces.Logger,
	defaults Defaults,
) *Handlers {
	if defaults.SummarySentences < 1 {
		defaults.SummarySentences = 6
	}
	if defaults.KeywordCount < 1 {
		defaults.KeywordCount = 5
	}
	return &Handlers{
		pipeline:   pipeline,
		summarizer: summarizer,
		keywords:   keywordExtractor,
		speech:     speech,
		store:      store,
		catalog:    catalog,
		logger:     logger,
		defaults:   defaults,
	}
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Sources handles GET /sources, returning the category catalog so the
// presentation layer can render its source picker.
func (h *Handlers) Sources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is allowed")
		return
	}
	writeJSON(w, http.StatusOK, h.catalog)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, responses.Error{Error: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
