// internal/transport/dto/questionnaire_dto.go
package dto

import (
	"candidate-intake-api/internal/wizard"

	"github.com/google/uuid"
)

// --- Questionnaire Request DTOs ---

// AddSkillRequest selects one skill on the bio step.
type AddSkillRequest struct {
	Skill string `json:"skill" validate:"required"`
}

// AddSlotRequest reserves one interview slot on the availability step.
type AddSlotRequest struct {
	Slot string `json:"slot" validate:"required"`
}

// --- Questionnaire Response DTOs ---

// SessionResponse returns the draft state after any session operation.
// FieldErrors is populated only after a failed step advance.
type SessionResponse struct {
	Draft       *wizard.Draft       `json:"draft"`
	FieldErrors []wizard.FieldError `json:"field_errors,omitempty"`
}

// SubmissionResponse confirms a completed intake.
type SubmissionResponse struct {
	CandidateID uuid.UUID `json:"candidate_id"`
}
