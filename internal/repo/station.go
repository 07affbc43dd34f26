package repo

import (
	"context"
	"fmt"

	"github.com/topraga-donus/backend/internal/domain"
)

// StationRepo defines the read surface of the recycling-station map data.
type StationRepo interface {
	// List returns every collection point, newest first.
	List(ctx context.Context) ([]domain.Station, error)
}

type pgStationRepo struct {
	db db
}

// NewStationRepo constructs a StationRepo backed by the provided db connection.
func NewStationRepo(db db) StationRepo {
	return &pgStationRepo{db: db}
}

func (r *pgStationRepo) List(ctx context.Context) ([]domain.Station, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM stations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repo.StationRepo.List: %w", classify(err))
	}

	raw, err := collectRaw(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.StationRepo.List: %w", err)
	}

	stations := make([]domain.Station, 0, len(raw))
	for _, row := range raw {
		stations = append(stations, domain.Station{
			ID:        rawUUID(row, "id"),
			Name:      rawString(row, "name"),
			Kind:      domain.StationKind(rawString(row, "kind")),
			Lat:       rawFloat(row, "lat"),
			Lng:       rawFloat(row, "lng"),
			Verified:  rawBool(row, "verified", false),
			Distance:  rawString(row, "distance"),
			CreatedAt: rawTime(row, "created_at"),
		})
	}
	return stations, nil
}
