package domain

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/google/uuid"
)

// SchoolRegistration is a teacher's sign-up for the program.
// Activities holds the activity tags selected on the form (e.g. "compost-lab",
// "waste-audit"); the set of valid tags lives in the front end, the server
// stores whatever was submitted.
type SchoolRegistration struct {
	ID           uuid.UUID           `json:"id"`
	SchoolName   string              `json:"school_name"`
	City         string              `json:"city"`
	District     string              `json:"district"`
	TeacherName  string              `json:"teacher_name"`
	Email        openapi_types.Email `json:"email"`
	Phone        string              `json:"phone,omitempty"`
	StudentCount int                 `json:"student_count"`
	Activities   []string            `json:"activities"`
	Status       ModerationStatus    `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
}
