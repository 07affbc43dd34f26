package repo

import (
	"context"
	"fmt"

	"github.com/topraga-donus/backend/internal/domain"
)

// GalleryRepo defines the read surface of the content gallery.
type GalleryRepo interface {
	// List returns every gallery image, newest first.
	List(ctx context.Context) ([]domain.GalleryImage, error)
}

type pgGalleryRepo struct {
	db db
}

// NewGalleryRepo constructs a GalleryRepo backed by the provided db connection.
func NewGalleryRepo(db db) GalleryRepo {
	return &pgGalleryRepo{db: db}
}

func (r *pgGalleryRepo) List(ctx context.Context) ([]domain.GalleryImage, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM project_images ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repo.GalleryRepo.List: %w", classify(err))
	}

	raw, err := collectRaw(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.GalleryRepo.List: %w", err)
	}

	images := make([]domain.GalleryImage, 0, len(raw))
	for _, row := range raw {
		category := domain.GalleryCategory(rawString(row, "category"))
		if category == "" {
			// Rows created before the category column existed display as posters.
			category = domain.GalleryPoster
		}
		images = append(images, domain.GalleryImage{
			ID:        rawUUID(row, "id"),
			Title:     rawString(row, "title"),
			Category:  category,
			ImageURL:  imageFrom(row),
			CreatedAt: rawTime(row, "created_at"),
		})
	}
	return images, nil
}
