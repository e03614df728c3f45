// internal/api/handlers/skill_categories.go
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

// SkillCategoryHandler holds dependencies for skill category dashboard operations.
type SkillCategoryHandler struct {
	service   services.SkillCategoryService
	validator *validator.Validate
}

// NewSkillCategoryHandler creates a new SkillCategoryHandler.
func NewSkillCategoryHandler(service services.SkillCategoryService, validate *validator.Validate) *SkillCategoryHandler {
	return &SkillCategoryHandler{
		service:   service,
		validator: validate,
	}
}

// ListSkillCategories godoc
// @Summary      List skill categories
// @Description  Returns all skill categories sorted by display order.
// @Tags         skill-categories
// @Produce      json
// @Success      200 {array}   dto.ReferenceItemResponse
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /skill-categories [get]
func (h *SkillCategoryHandler) ListSkillCategories(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("Error listing skill categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list skill categories"})
		return
	}

	responses := make([]dto.ReferenceItemResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, MapSkillCategoryToResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateSkillCategory godoc
// @Summary      Create a skill category
// @Description  Adds a category at the end of the display order.
// @Tags         skill-categories
// @Accept       json
// @Produce      json
// @Param        category body dto.CreateReferenceItemRequest true "Category name"
// @Success      201 {object}  dto.ReferenceItemResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/skill-categories [post]
// @Security     BearerAuth
func (h *SkillCategoryHandler) CreateSkillCategory(c *gin.Context) {
	var req dto.CreateReferenceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	category, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating skill category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill category"})
		return
	}
	c.JSON(http.StatusCreated, MapSkillCategoryToResponse(category))
}

// RenameSkillCategory godoc
// @Summary      Rename a skill category
// @Tags         skill-categories
// @Accept       json
// @Produce      json
// @Param        id path int true "Category ID"
// @Param        category body dto.RenameReferenceItemRequest true "New name"
// @Success      200 {object}  dto.ReferenceItemResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Category Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/skill-categories/{id} [put]
// @Security     BearerAuth
func (h *SkillCategoryHandler) RenameSkillCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
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

	category, err := h.service.Rename(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill category not found"})
		default:
			log.Printf("Error renaming skill category %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename skill category"})
		}
		return
	}
	c.JSON(http.StatusOK, MapSkillCategoryToResponse(category))
}

// DeleteSkillCategory godoc
// @Summary      Delete a skill category
// @Description  Removes a category along with every skill under it.
// @Tags         skill-categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      204 "Category deleted"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Category Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/skill-categories/{id} [delete]
// @Security     BearerAuth
func (h *SkillCategoryHandler) DeleteSkillCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill category not found"})
			return
		}
		log.Printf("Error deleting skill category %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skill category"})
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveSkillCategoryUp godoc
// @Summary      Move a skill category up
// @Tags         skill-categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      204 "Order updated"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Category Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/skill-categories/{id}/move-up [post]
// @Security     BearerAuth
func (h *SkillCategoryHandler) MoveSkillCategoryUp(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	if err := h.service.MoveUp(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill category not found"})
			return
		}
		log.Printf("Error moving skill category %d up: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move skill category"})
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveSkillCategoryDown godoc
// @Summary      Move a skill category down
// @Tags         skill-categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      204 "Order updated"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Category Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/skill-categories/{id}/move-down [post]
// @Security     BearerAuth
func (h *SkillCategoryHandler) MoveSkillCategoryDown(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	if err := h.service.MoveDown(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill category not found"})
			return
		}
		log.Printf("Error moving skill category %d down: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move skill category"})
		return
	}
	c.Status(http.StatusNoContent)
}
