// ABOUTME: Crawl endpoint handler running the full category pipeline
// ABOUTME: Returns articles with summaries and keywords already populated

package handlers

import (
	"net/http"

	"insightink-api/api/dto/requests"
	"insightink-api/api/dto/responses"
	"insightink-api/core/errors"
)

// Crawl handles POST /crawl.
func (h *Handlers) Crawl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "only POST is allowed")
		return
	}

	var req requests.CrawlArticles
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	articles, err := h.pipeline.Crawl(r.Context(), req.ToCrawlRequest(), req.Language)
	if err != nil {
		if errors.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Crawl failed", map[string]interface{}{
			"url":   req.URL,
			"error": err.Error(),
		})
		writeError(w, http.StatusInternalServerError, "crawl failed")
		return
	}

	writeJSON(w, http.StatusOK, responses.FromDomainArticles(articles))
}
