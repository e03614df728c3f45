// internal/transport/dto/reference_dto.go
package dto

import "time"

// --- Reference-table Request DTOs (positions, skill categories, skills) ---

// CreateReferenceItemRequest defines the structure for creating a position or
// a skill category. Display order is assigned server-side.
type CreateReferenceItemRequest struct {
	Name string `json:"name" validate:"required"`
}

// RenameReferenceItemRequest defines the structure for renaming a position,
// skill category, or skill.
type RenameReferenceItemRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateSkillRequest defines the structure for creating a skill under a
// category.
type CreateSkillRequest struct {
	Name       string `json:"name" validate:"required"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
}

// --- Reference-table Response DTOs ---

// ReferenceItemResponse is the standard shape for positions and skill
// categories.
type ReferenceItemResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// SkillResponse includes the owning category for grouped rendering.
type SkillResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
