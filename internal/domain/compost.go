package domain

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/google/uuid"
)

// ExperimentArm identifies which of the two classroom pots a measurement
// belongs to.
type ExperimentArm string

const (
	ArmControl ExperimentArm = "control" // plain soil
	ArmCompost ExperimentArm = "compost" // compost-enriched soil
)

// CompostLog is one dated measurement from the classroom compost experiment.
type CompostLog struct {
	ID          uuid.UUID          `json:"id"`
	LogDate     openapi_types.Date `json:"log_date"`
	Arm         ExperimentArm      `json:"arm"`
	PlantHeight float64            `json:"plant_height"` // centimetres
	LeafCount   int                `json:"leaf_count"`
	Notes       string             `json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// CompostPair joins the two arms' measurements for one calendar date so the
// lab chart can plot them side by side. Either side may be nil when only one
// arm was measured that day. The pairing is a derived view, not stored.
type CompostPair struct {
	Date    openapi_types.Date `json:"date"`
	Control *CompostLog        `json:"control,omitempty"`
	Compost *CompostLog        `json:"compost,omitempty"`
}
