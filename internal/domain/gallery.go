package domain

import (
	"time"

	"github.com/google/uuid"
)

// GalleryCategory is one of the two display groups in the content gallery.
type GalleryCategory string

const (
	GalleryPoster GalleryCategory = "poster"
	GalleryPhoto  GalleryCategory = "photo"
)

// GalleryImage is a single item in the content gallery.
// Display order is insertion-time descending; there is no explicit ordering field.
type GalleryImage struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Category  GalleryCategory `json:"category"`
	ImageURL  string          `json:"image_url"`
	CreatedAt time.Time       `json:"created_at"`
}
