// Package service contains the business logic for the Toprağa Dönüş API.
// Services enforce the fetch-with-fallback policy, inject per-tab defaults,
// and orchestrate repo calls. No SQL lives here — services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"log/slog"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/repo"
)

// Source tells the caller where a resource list came from. Read failures are
// never surfaced as errors — only as fallback data — so this is the sole
// observability signal on the read path.
type Source string

const (
	// SourceLive means the backend returned at least one row.
	SourceLive Source = "live"
	// SourceFallbackEmpty means the query succeeded with zero rows; an empty
	// remote table must not blank the UI, so the bundled dataset is served.
	SourceFallbackEmpty Source = "fallback_empty"
	// SourceFallbackError means the query failed and the bundled dataset is
	// served in its place.
	SourceFallbackError Source = "fallback_error"
)

// listOrFallback implements the shared read policy: live rows when the query
// returns any, the bundled fallback otherwise. Errors are logged and absorbed
// here; callers never see them. No retry, no caching across calls.
func listOrFallback[T any](ctx context.Context, log *slog.Logger, resource string,
	query func(context.Context) ([]T, error), fallback func() []T) ([]T, Source) {

	rows, err := query(ctx)
	if err != nil {
		log.WarnContext(ctx, "resource query failed, serving bundled fallback",
			"resource", resource, "error", err)
		return fallback(), SourceFallbackError
	}
	if len(rows) == 0 {
		log.InfoContext(ctx, "resource table empty, serving bundled fallback",
			"resource", resource)
		return fallback(), SourceFallbackEmpty
	}
	return rows, SourceLive
}

// CatalogService serves the waste-sorting catalog.
type CatalogService struct {
	repo repo.WasteRepo
	log  *slog.Logger
}

// NewCatalogService constructs a CatalogService backed by the provided WasteRepo.
func NewCatalogService(r repo.WasteRepo, log *slog.Logger) *CatalogService {
	return &CatalogService{repo: r, log: log}
}

// List returns the catalog and where it came from. It never fails.
func (s *CatalogService) List(ctx context.Context) ([]domain.WasteItem, Source) {
	return listOrFallback(ctx, s.log, "waste_items", s.repo.List, domain.FallbackWasteItems)
}

// StationService serves the recycling-station map data.
type StationService struct {
	repo repo.StationRepo
	log  *slog.Logger
}

// NewStationService constructs a StationService backed by the provided StationRepo.
func NewStationService(r repo.StationRepo, log *slog.Logger) *StationService {
	return &StationService{repo: r, log: log}
}

// List returns the stations and where they came from. It never fails.
func (s *StationService) List(ctx context.Context) ([]domain.Station, Source) {
	return listOrFallback(ctx, s.log, "stations", s.repo.List, domain.FallbackStations)
}

// GalleryService serves the content gallery.
type GalleryService struct {
	repo repo.GalleryRepo
	log  *slog.Logger
}

// NewGalleryService constructs a GalleryService backed by the provided GalleryRepo.
func NewGalleryService(r repo.GalleryRepo, log *slog.Logger) *GalleryService {
	return &GalleryService{repo: r, log: log}
}

// List returns the gallery images and where they came from. It never fails.
func (s *GalleryService) List(ctx context.Context) ([]domain.GalleryImage, Source) {
	return listOrFallback(ctx, s.log, "project_images", s.repo.List, domain.FallbackGallery)
}
