package domain

import (
	"time"

	"github.com/google/uuid"
)

// StationKind identifies what a collection point accepts.
type StationKind string

// The nine collection-point kinds shown on the recycling map.
const (
	StationPaper      StationKind = "paper"
	StationPlastic    StationKind = "plastic"
	StationGlass      StationKind = "glass"
	StationMetal      StationKind = "metal"
	StationOrganic    StationKind = "organic"
	StationElectronic StationKind = "electronic"
	StationBattery    StationKind = "battery"
	StationOil        StationKind = "oil"
	StationTextile    StationKind = "textile"
)

// Station is a recycling collection point rendered as a map marker.
// Distance is a human-readable string computed client-side (or a placeholder);
// the server stores it verbatim and attaches no meaning to it.
type Station struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Kind      StationKind `json:"kind"`
	Lat       float64     `json:"lat"`
	Lng       float64     `json:"lng"`
	Verified  bool        `json:"verified"`
	Distance  string      `json:"distance,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
