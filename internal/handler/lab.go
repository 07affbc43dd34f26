package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/topraga-donus/backend/internal/stage"
)

// stageInfo is the wire form of one animation stage.
type stageInfo struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DurationMS  int64  `json:"duration_ms"`
}

// ListStages handles GET /api/lab/stages: the compost narrative the
// visualization animates through, with per-stage durations.
func (s *Server) ListStages(w http.ResponseWriter, _ *http.Request) {
	stages := s.lab.Stages()
	out := make([]stageInfo, len(stages))
	for i, st := range stages {
		out[i] = stageInfo{
			Key:         st.Key,
			Title:       st.Title,
			Description: st.Description,
			DurationMS:  st.Duration.Milliseconds(),
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"stages": out,
		"speeds": stage.Speeds,
	})
}

// simulateRequest is a client-held animation state plus the elapsed time to
// apply to it.
type simulateRequest struct {
	State     stage.State `json:"state"`
	ElapsedMS int64       `json:"elapsed_ms"`
}

// SimulateStage handles POST /api/lab/simulate: applies one tick of the
// animation state machine server-side, for clients without local timers.
// The posted state carries the stage index the tick starts from, so a stale
// client-side index can never leak into the duration lookup.
func (s *Server) SimulateStage(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "malformed request body")
		return
	}
	if req.ElapsedMS < 0 {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "elapsed_ms must not be negative")
		return
	}
	if req.State.Speed != 0 && !stage.ValidSpeed(req.State.Speed) {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "unsupported speed")
		return
	}
	if req.State.Speed == 0 {
		req.State.Speed = 1
	}

	next := stage.Step(req.State, time.Duration(req.ElapsedMS)*time.Millisecond, stage.DefaultStages())
	respondJSON(w, http.StatusOK, next)
}

// GetLabState handles GET /api/lab/state. Reading the state also advances it
// by the wall-clock time since the last read, so polling clients drive the
// animation without a separate tick endpoint.
func (s *Server) GetLabState(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.lab.Tick())
}

// PlayLab handles POST /api/lab/play.
func (s *Server) PlayLab(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.lab.Play())
}

// PauseLab handles POST /api/lab/pause.
func (s *Server) PauseLab(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.lab.Pause())
}

// ResetLab handles POST /api/lab/reset.
func (s *Server) ResetLab(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.lab.Reset())
}

type speedRequest struct {
	Speed float64 `json:"speed"`
}

// SetLabSpeed handles POST /api/lab/speed.
func (s *Server) SetLabSpeed(w http.ResponseWriter, r *http.Request) {
	var req speedRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "malformed request body")
		return
	}
	state, err := s.lab.SetSpeed(req.Speed)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "unsupported speed")
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// SelectLabStage handles POST /api/lab/stage/{index}: jump straight to a
// stage, paused at progress 0.
func (s *Server) SelectLabStage(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "malformed stage index")
		return
	}
	state, err := s.lab.SelectStage(i)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "stage index out of range")
		return
	}
	respondJSON(w, http.StatusOK, state)
}
