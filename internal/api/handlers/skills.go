// internal/api/handlers/skills.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"candidate-intake-api/internal/services"
	"candidate-intake-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

// SkillHandler holds dependencies for skill dashboard operations.
type SkillHandler struct {
	service   services.SkillService
	validator *validator.Validate
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(service services.SkillService, validate *validator.Validate) *SkillHandler {
	return &SkillHandler{
		service:   service,
		validator: validate,
	}
}

// ListSkills godoc
// @Summary      List skills
// @Description  Returns all skills sorted by name, each with its category.
// @Tags         skills
// @Produce      json
// @Success      200 {array}   dto.SkillResponse
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("Error listing skills: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list skills"})
		return
	}

	responses := make([]dto.SkillResponse, 0, len(skills))
	for i := range skills {
		responses = append(responses, MapSkillToResponse(&skills[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateSkill godoc
// @Summary      Create a skill
// @Description  Adds a skill under an existing category.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill body dto.CreateSkillRequest true "Skill name and category"
// @Success      201 {object}  dto.SkillResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      409 {object}  map[string]string "Category does not exist"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/skills [post]
// @Security     BearerAuth
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	skill, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Skill category does not exist"})
		default:
			log.Printf("Error creating skill: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill"})
		}
		return
	}
	c.JSON(http.StatusCreated, MapSkillToResponse(skill))
}

// RenameSkill godoc
// @Summary      Rename a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id path int true "Skill ID"
// @Param        skill body dto.RenameReferenceItemRequest true "New name"
// @Success      200 {object}  dto.SkillResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Skill Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) RenameSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID format"})
		return
	}

	var req dto.RenameReferenceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	skill, err := h.service.Rename(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		default:
			log.Printf("Error renaming skill %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename skill"})
		}
		return
	}
	c.JSON(http.StatusOK, MapSkillToResponse(skill))
}

// DeleteSkill godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id path int true "Skill ID"
// @Success      204 "Skill deleted"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Skill Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
			return
		}
		log.Printf("Error deleting skill %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skill"})
		return
	}
	c.Status(http.StatusNoContent)
}
