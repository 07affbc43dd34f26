package domain

import (
	"time"

	"github.com/google/uuid"
)

// SuggestionKind is the contribution type picked on the public form.
type SuggestionKind string

const (
	SuggestionWaste   SuggestionKind = "waste"   // a waste item missing from the catalog
	SuggestionStation SuggestionKind = "station" // a collection point missing from the map
	SuggestionIdea    SuggestionKind = "idea"    // free-form idea
)

// ModerationStatus tracks whether an admin has reviewed a submission.
// The public form only ever writes StatusPending.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

// Suggestion is a public contribution awaiting moderation.
// Which free-text fields are populated depends on Kind; the schema keeps them
// all nullable rather than splitting into three tables.
type Suggestion struct {
	ID          uuid.UUID        `json:"id"`
	Kind        SuggestionKind   `json:"kind"`
	Name        string           `json:"name,omitempty"`     // suggested item or station name
	Location    string           `json:"location,omitempty"` // station suggestions only
	Description string           `json:"description,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	Status      ModerationStatus `json:"status"`
	SenderName  string           `json:"sender_name,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
