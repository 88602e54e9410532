// ABOUTME: Summarize and keywords endpoint handlers
// ABOUTME: Thin wrappers over the pure derivation functions

package handlers

import (
	"net/http"

	"insightink-api/api/dto/requests"
	"insightink-api/api/dto/responses"
)

// Summarize handles POST /summarize.
func (h *Handlers) Summarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "only POST is allowed")
		return
	}

	var req requests.Summarize
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sentences := req.Sentences
	if sentences == 0 {
		sentences = h.defaults.SummarySentences
	}

	writeJSON(w, http.StatusOK, responses.Summarize{
		Summary: h.summarizer.Summarize(req.Content, sentences),
	})
}

// Keywords handles POST /keywords.
func (h *Handlers) Keywords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "only POST is allowed")
		return
	}

	var req requests.Keywords
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	count := req.Count
	if count == 0 {
		count = h.defaults.KeywordCount
	}

	kws := h.keywords.Extract(req.Content, count)
	if kws == nil {
		kws = []string{}
	}
	writeJSON(w, http.StatusOK, responses.Keywords{Keywords: kws})
}
