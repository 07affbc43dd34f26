// Package domain contains the core data types for the Toprağa Dönüş backend.
// This package has zero external dependencies beyond id/date value types and
// is imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// WasteCategory classifies a waste item for the sorting guide.
// The four categories are mutually exclusive.
type WasteCategory string

const (
	// WasteGreen marks nitrogen-rich material (fruit and vegetable scraps, coffee grounds).
	WasteGreen WasteCategory = "green"
	// WasteBrown marks carbon-rich material (dry leaves, cardboard, sawdust).
	WasteBrown WasteCategory = "brown"
	// WasteCaution marks material that composts only with preparation (citrus peel, bread).
	WasteCaution WasteCategory = "caution"
	// WasteProhibited marks material that must never enter the bin (meat, dairy, oil).
	WasteProhibited WasteCategory = "prohibited"
)

// WasteItem is one entry in the waste-sorting catalog.
// Category and Compostable are advisory-consistent: prohibited items should
// carry Compostable=false, but nothing enforces that server-side.
type WasteItem struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Category    WasteCategory `json:"category"`
	Compostable bool          `json:"compostable"`
	Preparation string        `json:"preparation,omitempty"` // how to prepare before composting
	Method      string        `json:"method,omitempty"`      // disposal method for non-compostables
	Reason      string        `json:"reason,omitempty"`      // why a prohibited item is prohibited
	Icon        string        `json:"icon,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
