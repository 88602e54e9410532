// ABOUTME: Audio endpoint handler streaming synthesized summary speech
// ABOUTME: Caches audio by article URL since synthesis is the costliest derivation

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"insightink-api/api/dto/requests"
	"insightink-api/core/derived"
)

const (
	audioContentType = "audio/ogg"
	audioCacheTTL    = 7 * 24 * time.Hour
)

// Audio handles POST /audio.
func (h *Handlers) Audio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "only POST is allowed")
		return
	}
	if h.speech == nil {
		writeError(w, http.StatusServiceUnavailable, "speech synthesis is not configured")
		return
	}

	var req requests.Audio
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.URL != "" {
		if cached, ok := h.store.Get(req.URL, req.Language, derived.KindAudio); ok {
			writeAudio(w, cached)
			return
		}
	}

	audio, err := h.speech.Synthesize(r.Context(), req.Text, req.Language)
	if err != nil {
		h.logger.Error("Speech synthesis failed", map[string]interface{}{
			"url":   req.URL,
			"error": err.Error(),
		})
		writeError(w, http.StatusBadGateway, "speech synthesis failed")
		return
	}

	if req.URL != "" {
		h.store.SetWithTTL(req.URL, req.Language, derived.KindAudio, audio, audioCacheTTL)
	}

	writeAudio(w, audio)
}

func writeAudio(w http.ResponseWriter, audio []byte) {
	w.Header().Set("Content-Type", audioContentType)
	w.Header().Set("Content-Length", fmt.Sprint(len(audio)))
	_, _ = w.Write(audio)
}
