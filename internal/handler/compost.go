package handler

import (
	"net/http"

	"github.com/topraga-donus/backend/internal/domain"
)

// ListCompostLogs handles GET /api/compost-logs.
// Rows come back ordered by log date ascending, ready for the lab charts.
func (s *Server) ListCompostLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.compost.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "compost logs unavailable")
		return
	}
	if logs == nil {
		logs = []domain.CompostLog{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"data": logs})
}

// ListCompostPairs handles GET /api/compost-logs/pairs: the derived
// control/compost comparison view, one pair per measurement date.
func (s *Server) ListCompostPairs(w http.ResponseWriter, r *http.Request) {
	pairs, err := s.compost.Pairs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "compost logs unavailable")
		return
	}
	if pairs == nil {
		pairs = []domain.CompostPair{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"data": pairs})
}
