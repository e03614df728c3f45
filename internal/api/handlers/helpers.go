package handlers

import (
	"fmt"

	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/transport/dto"

	"github.com/go-playground/validator"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "gt":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be greater than %s", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// MapPositionToResponse converts a models.Position to a dto.ReferenceItemResponse
func MapPositionToResponse(p *models.Position) dto.ReferenceItemResponse {
	return dto.ReferenceItemResponse{
		ID:           p.ID,
		Name:         p.Name,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt,
	}
}

// MapSkillCategoryToResponse converts a models.SkillCategory to a dto.ReferenceItemResponse
func MapSkillCategoryToResponse(sc *models.SkillCategory) dto.ReferenceItemResponse {
	return dto.ReferenceItemResponse{
		ID:           sc.ID,
		Name:         sc.Name,
		DisplayOrder: sc.DisplayOrder,
		CreatedAt:    sc.CreatedAt,
	}
}

// MapSkillToResponse converts a models.Skill to a dto.SkillResponse
func MapSkillToResponse(s *models.Skill) dto.SkillResponse {
	return dto.SkillResponse{
		ID:           s.ID,
		Name:         s.Name,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		CreatedAt:    s.CreatedAt,
	}
}
