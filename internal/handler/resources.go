package handler

import (
	"net/http"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/service"
)

// resourceList is the envelope every fallback-backed read returns: the rows
// plus where they came from. Callers never see an error for these reads.
type resourceList[T any] struct {
	Data   []T            `json:"data"`
	Source service.Source `json:"source"`
}

// ListWasteItems handles GET /api/waste-items.
func (s *Server) ListWasteItems(w http.ResponseWriter, r *http.Request) {
	items, src := s.catalog.List(r.Context())
	respondJSON(w, http.StatusOK, resourceList[domain.WasteItem]{Data: items, Source: src})
}

// ListStations handles GET /api/stations.
func (s *Server) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, src := s.stations.List(r.Context())
	respondJSON(w, http.StatusOK, resourceList[domain.Station]{Data: stations, Source: src})
}

// ListGallery handles GET /api/gallery.
func (s *Server) ListGallery(w http.ResponseWriter, r *http.Request) {
	images, src := s.gallery.List(r.Context())
	respondJSON(w, http.StatusOK, resourceList[domain.GalleryImage]{Data: images, Source: src})
}

// GetOverview handles GET /api/overview.
func (s *Server) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.overview.Get(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "overview unavailable")
		return
	}
	respondJSON(w, http.StatusOK, overview)
}
