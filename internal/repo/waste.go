package repo

import (
	"context"
	"fmt"

	"github.com/topraga-donus/backend/internal/domain"
)

// WasteRepo defines the read surface of the waste-sorting catalog.
// The fallback policy lives in the service layer; the repo reports errors.
type WasteRepo interface {
	// List returns every catalog entry, newest first.
	List(ctx context.Context) ([]domain.WasteItem, error)
}

type pgWasteRepo struct {
	db db
}

// NewWasteRepo constructs a WasteRepo backed by the provided db connection.
func NewWasteRepo(db db) WasteRepo {
	return &pgWasteRepo{db: db}
}

// List selects all columns so that rows from older table revisions (which
// spell the image column differently) still carry their image reference.
func (r *pgWasteRepo) List(ctx context.Context) ([]domain.WasteItem, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM waste_items ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repo.WasteRepo.List: %w", classify(err))
	}

	raw, err := collectRaw(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.WasteRepo.List: %w", err)
	}

	items := make([]domain.WasteItem, 0, len(raw))
	for _, row := range raw {
		items = append(items, domain.WasteItem{
			ID:          rawUUID(row, "id"),
			Name:        rawString(row, "name"),
			Category:    domain.WasteCategory(rawString(row, "category")),
			Compostable: rawBool(row, "compostable", false),
			Preparation: rawString(row, "preparation"),
			Method:      rawString(row, "method"),
			Reason:      rawString(row, "reason"),
			Icon:        rawString(row, "icon"),
			ImageURL:    imageFrom(row),
			CreatedAt:   rawTime(row, "created_at"),
		})
	}
	return items, nil
}
