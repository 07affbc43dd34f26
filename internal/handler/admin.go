package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/service"
)

// ListTabs handles GET /api/admin/tabs and returns the console tab registry.
func (s *Server) ListTabs(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.admin.Tabs())
}

// AdminList handles GET /api/admin/{tab}. A missing backend table is not an
// error here: the response carries the recoverable state and the remediation
// SQL so the console can render setup instructions instead of a failure.
func (s *Server) AdminList(w http.ResponseWriter, r *http.Request) {
	state, err := s.admin.List(r.Context(), chi.URLParam(r, "tab"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTab) {
			respondError(w, http.StatusNotFound, "unknown_tab", "no such admin tab")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// AdminCreate handles POST /api/admin/{tab}. It accepts either a multipart
// form (string fields plus an optional "image" file) or a JSON object. Insert
// failures surface the backend's own message so the console shows the real
// cause, not a sanitized one.
func (s *Server) AdminCreate(w http.ResponseWriter, r *http.Request) {
	var (
		fields map[string]any
		image  *service.Upload
	)

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondError(w, http.StatusBadRequest, "validation_error", "malformed form")
			return
		}
		fields = make(map[string]any, len(r.MultipartForm.Value))
		for name, values := range r.MultipartForm.Value {
			if len(values) == 0 {
				continue
			}
			fields[name] = service.CoerceField(name, values[0])
		}
		up, cleanup, err := formUpload(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "validation_error", "malformed image upload")
			return
		}
		defer cleanup()
		image = up
	} else {
		if err := decodeJSON(r, &fields); err != nil {
			respondError(w, http.StatusBadRequest, "validation_error", "malformed request body")
			return
		}
	}

	err := s.admin.Create(r.Context(), chi.URLParam(r, "tab"), fields, image)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownTab):
			respondError(w, http.StatusNotFound, "unknown_tab", "no such admin tab")
		case errors.Is(err, domain.ErrTableMissing):
			respondError(w, http.StatusConflict, "table_missing", "backend table does not exist yet")
		default:
			respondError(w, http.StatusUnprocessableEntity, "insert_failed", err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// AdminDelete handles DELETE /api/admin/{tab}/{id}.
func (s *Server) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "malformed row id")
		return
	}

	err = s.admin.Delete(r.Context(), chi.URLParam(r, "tab"), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownTab):
			respondError(w, http.StatusNotFound, "unknown_tab", "no such admin tab")
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "not_found", "row not found")
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
