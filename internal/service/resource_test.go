package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/service"
)

// Func-field repo doubles, one per resource. Set only what the test needs.

type mockWasteRepo struct {
	list func(ctx context.Context) ([]domain.WasteItem, error)
}

func (m *mockWasteRepo) List(ctx context.Context) ([]domain.WasteItem, error) { return m.list(ctx) }

type mockStationRepo struct {
	list func(ctx context.Context) ([]domain.Station, error)
}

func (m *mockStationRepo) List(ctx context.Context) ([]domain.Station, error) { return m.list(ctx) }

type mockGalleryRepo struct {
	list func(ctx context.Context) ([]domain.GalleryImage, error)
}

func (m *mockGalleryRepo) List(ctx context.Context) ([]domain.GalleryImage, error) {
	return m.list(ctx)
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCatalogService_LiveRows(t *testing.T) {
	live := []domain.WasteItem{{Name: "Yumurta kabuğu", Category: domain.WasteGreen}}
	svc := service.NewCatalogService(&mockWasteRepo{
		list: func(context.Context) ([]domain.WasteItem, error) { return live, nil },
	}, discard())

	items, src := svc.List(context.Background())

	assert.Equal(t, service.SourceLive, src)
	assert.Equal(t, live, items)
}

func TestCatalogService_QueryErrorServesFallback(t *testing.T) {
	svc := service.NewCatalogService(&mockWasteRepo{
		list: func(context.Context) ([]domain.WasteItem, error) { return nil, errors.New("connection refused") },
	}, discard())

	items, src := svc.List(context.Background())

	assert.Equal(t, service.SourceFallbackError, src)
	assert.Equal(t, domain.FallbackWasteItems(), items)
}

func TestCatalogService_EmptyTableServesFallback(t *testing.T) {
	svc := service.NewCatalogService(&mockWasteRepo{
		list: func(context.Context) ([]domain.WasteItem, error) { return nil, nil },
	}, discard())

	items, src := svc.List(context.Background())

	assert.Equal(t, service.SourceFallbackEmpty, src)
	assert.Equal(t, domain.FallbackWasteItems(), items)
}

func TestStationService_UnreachableTableServesSevenBundledStations(t *testing.T) {
	svc := service.NewStationService(&mockStationRepo{
		list: func(context.Context) ([]domain.Station, error) { return nil, errors.New("dial tcp: timeout") },
	}, discard())

	stations, src := svc.List(context.Background())

	assert.Equal(t, service.SourceFallbackError, src)
	require.Len(t, stations, 7)

	// Fixed coordinates and verification flags from the bundle survive intact.
	assert.Equal(t, domain.FallbackStations(), stations)
	assert.InDelta(t, 39.9255, stations[0].Lat, 0.0001)
	assert.True(t, stations[0].Verified)
	assert.False(t, stations[3].Verified)
}

func TestGalleryService_LiveRowsReplaceFallback(t *testing.T) {
	live := []domain.GalleryImage{
		{Title: "Sergi", Category: domain.GalleryPhoto, ImageURL: "/uploads/x.jpg"},
		{Title: "Afiş", Category: domain.GalleryPoster, ImageURL: "/uploads/y.png"},
	}
	svc := service.NewGalleryService(&mockGalleryRepo{
		list: func(context.Context) ([]domain.GalleryImage, error) { return live, nil },
	}, discard())

	images, src := svc.List(context.Background())

	assert.Equal(t, service.SourceLive, src)
	assert.Len(t, images, len(live))
}
