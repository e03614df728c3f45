// internal/api/handlers/positions.go
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

// PositionHandler holds dependencies for position dashboard operations.
type PositionHandler struct {
	service   services.PositionService
	validator *validator.Validate
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(service services.PositionService, validate *validator.Validate) *PositionHandler {
	return &PositionHandler{
		service:   service,
		validator: validate,
	}
}

// ListPositions godoc
// @Summary      List positions
// @Description  Returns all positions sorted by display order.
// @Tags         positions
// @Produce      json
// @Success      200 {array}   dto.ReferenceItemResponse
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /positions [get]
func (h *PositionHandler) ListPositions(c *gin.Context) {
	positions, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("Error listing positions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list positions"})
		return
	}

	responses := make([]dto.ReferenceItemResponse, 0, len(positions))
	for i := range positions {
		responses = append(responses, MapPositionToResponse(&positions[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// CreatePosition godoc
// @Summary      Create a position
// @Description  Adds a position at the end of the display order.
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        position body dto.CreateReferenceItemRequest true "Position name"
// @Success      201 {object}  dto.ReferenceItemResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/positions [post]
// @Security     BearerAuth
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	var req dto.CreateReferenceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	position, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating position: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create position"})
		return
	}
	c.JSON(http.StatusCreated, MapPositionToResponse(position))
}

// RenamePosition godoc
// @Summary      Rename a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        id path int true "Position ID"
// @Param        position body dto.RenameReferenceItemRequest true "New name"
// @Success      200 {object}  dto.ReferenceItemResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Position Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/positions/{id} [put]
// @Security     BearerAuth
func (h *PositionHandler) RenamePosition(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position ID format"})
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

	position, err := h.service.Rename(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Position not found"})
		default:
			log.Printf("Error renaming position %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename position"})
		}
		return
	}
	c.JSON(http.StatusOK, MapPositionToResponse(position))
}

// DeletePosition godoc
// @Summary      Delete a position
// @Description  Removes a position. Remaining display orders are left as-is.
// @Tags         positions
// @Produce      json
// @Param        id path int true "Position ID"
// @Success      204 "Position deleted"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Position Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/positions/{id} [delete]
// @Security     BearerAuth
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Position not found"})
			return
		}
		log.Printf("Error deleting position %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete position"})
		return
	}
	c.Status(http.StatusNoContent)
}

// MovePositionUp godoc
// @Summary      Move a position up
// @Description  Swaps display order with the previous position. Already-first is a no-op.
// @Tags         positions
// @Produce      json
// @Param        id path int true "Position ID"
// @Success      204 "Order updated"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Position Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/positions/{id}/move-up [post]
// @Security     BearerAuth
func (h *PositionHandler) MovePositionUp(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position ID format"})
		return
	}

	if err := h.service.MoveUp(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Position not found"})
			return
		}
		log.Printf("Error moving position %d up: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move position"})
		return
	}
	c.Status(http.StatusNoContent)
}

// MovePositionDown godoc
// @Summary      Move a position down
// @Description  Swaps display order with the next position. Already-last is a no-op.
// @Tags         positions
// @Produce      json
// @Param        id path int true "Position ID"
// @Success      204 "Order updated"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Position Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/positions/{id}/move-down [post]
// @Security     BearerAuth
func (h *PositionHandler) MovePositionDown(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position ID format"})
		return
	}

	if err := h.service.MoveDown(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Position not found"})
			return
		}
		log.Printf("Error moving position %d down: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move position"})
		return
	}
	c.Status(http.StatusNoContent)
}
