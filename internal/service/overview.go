package service

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/topraga-donus/backend/internal/domain"
)

// Overview is the aggregate the home page renders: resource counts with their
// sources, plus the featured post when one exists.
type Overview struct {
	WasteItemCount int               `json:"waste_item_count"`
	StationCount   int               `json:"station_count"`
	GalleryCount   int               `json:"gallery_count"`
	Sources        map[string]Source `json:"sources"`
	FeaturedPost   *domain.BlogPost  `json:"featured_post,omitempty"`
}

// OverviewService aggregates the independent resource reads for the home page.
type OverviewService struct {
	catalog  *CatalogService
	stations *StationService
	gallery  *GalleryService
	blog     *BlogService
}

// NewOverviewService constructs an OverviewService over the read services.
func NewOverviewService(catalog *CatalogService, stations *StationService, gallery *GalleryService, blog *BlogService) *OverviewService {
	return &OverviewService{catalog: catalog, stations: stations, gallery: gallery, blog: blog}
}

// Get fetches the four reads concurrently. The resource reads can't fail by
// construction (they fall back); a missing featured post is simply omitted,
// so the only errors that surface are real blog query failures.
func (s *OverviewService) Get(ctx context.Context) (Overview, error) {
	var (
		out = Overview{Sources: make(map[string]Source, 3)}
		mu  sync.Mutex // guards out.Sources across the goroutines
	)
	setSource := func(name string, src Source) {
		mu.Lock()
		out.Sources[name] = src
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, src := s.catalog.List(gctx)
		out.WasteItemCount = len(items)
		setSource("waste_items", src)
		return nil
	})
	g.Go(func() error {
		stations, src := s.stations.List(gctx)
		out.StationCount = len(stations)
		setSource("stations", src)
		return nil
	})
	g.Go(func() error {
		images, src := s.gallery.List(gctx)
		out.GalleryCount = len(images)
		setSource("project_images", src)
		return nil
	})
	g.Go(func() error {
		post, err := s.blog.Featured(gctx)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		}
		out.FeaturedPost = &post
		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}
