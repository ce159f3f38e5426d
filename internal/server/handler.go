package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/viettran1502/transcriptor/internal/domain"
)

type transcriptRequest struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST required"})
		return
	}

	var req transcriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"url\": \"...\"}"})
		return
	}

	key := normalizeURL(req.URL)
	if res, ok := s.cache.Get(key); ok {
		s.logger.Debug(ctx, "Cache hit: %s", key)
		writeJSON(w, http.StatusOK, res)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check after acquiring the lock: another request may have just
	// finished the same URL.
	if res, ok := s.cache.Get(key); ok {
		writeJSON(w, http.StatusOK, res)
		return
	}

	res, err := s.pipeline.Run(ctx, req.URL)
	if err != nil {
		var upErr *domain.UnsupportedPlatformError
		if errors.As(err, &upErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	s.cache.Set(key, res)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
		"cached": s.cache.Len(),
		"model":  s.cfg.Whisper.Model,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
