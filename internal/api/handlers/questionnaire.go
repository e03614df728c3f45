// internal/api/handlers/questionnaire.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"candidate-intake-api/internal/services"
	"candidate-intake-api/internal/transport/dto"
	"candidate-intake-api/internal/wizard"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

// QuestionnaireHandler holds dependencies for draft session operations.
type QuestionnaireHandler struct {
	service   services.QuestionnaireService
	validator *validator.Validate
}

// NewQuestionnaireHandler creates a new QuestionnaireHandler.
func NewQuestionnaireHandler(service services.QuestionnaireService, validate *validator.Validate) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		service:   service,
		validator: validate,
	}
}

// CreateSession godoc
// @Summary      Start a questionnaire session
// @Description  Opens a fresh draft on the first step and returns it with its session id.
// @Tags         questionnaire
// @Produce      json
// @Success      201 {object}  dto.SessionResponse
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /questionnaire/sessions [post]
func (h *QuestionnaireHandler) CreateSession(c *gin.Context) {
	draft, err := h.service.CreateSession(c.Request.Context())
	if err != nil {
		log.Printf("Error creating questionnaire session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, dto.SessionResponse{Draft: draft})
}

// GetSession godoc
// @Summary      Get a questionnaire session
// @Tags         questionnaire
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object}  dto.SessionResponse
// @Failure      404 {object}  map[string]string "Session Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /questionnaire/sessions/{id} [get]
func (h *QuestionnaireHandler) GetSession(c *gin.Context) {
	draft, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondSessionError(c, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Draft: draft})
}

// UpdateSession godoc
// @Summary      Update draft fields
// @Description  Shallow-merges the given fields into the draft. No validation runs; invalid values surface when advancing or submitting.
// @Tags         questionnaire
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        update body wizard.Update true "Fields to merge"
// @Success      200 {object}  dto.SessionResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Session Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /questionnaire/sessions/{id} [patch]
func (h *QuestionnaireHandler) UpdateSession(c *gin.Context) {
	var upd wizard.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	draft, err := h.service.UpdateSession(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		h.respondSessionError(c, err, "Failed to update session")
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Draft: draft})
}

// NextStep godoc
// @Summary      Advance to the next step
// @Description  Validates the current step. On success the cursor advances; on failure the response carries field errors and the cursor stays put.
// @Tags         questionnaire
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object}  dto.SessionResponse
// @Failure      404 {object}  map[string]string "Session Not Found"
// @Failure      422 {object}  dto.SessionResponse "Step validation failed"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /questionnaire/sessions/{id}/next [post]
func (h *QuestionnaireHandler) NextStep(c *gin.Context) {
	draft, fieldErrs, err := h.service.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondSessionError(c, err, "Failed to advance session")
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, dto.SessionResponse{Draft: draft, FieldErrors: fieldErrs})
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Draft: draft})
}

// PrevStep godoc
// @Summary      Go back one step
// @Description  Moves the cursor back without validating. Entered data is kept.
// @Tags         questionnaire
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object}  dto.SessionResponse
// @Failure      404 {object}  map[string]string "Session Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /questionnaire/sessions/{id}/back [post]
func (h *QuestionnaireHandler) PrevStep(c *gin.Context) {
	draft, err := h.service.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondSessionError(c, err, "Failed to step session back")
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Draft: draft})
}

// SelectSkill godoc
// @Summary      Select a skill
// @Description  Adds a catalog skill to the draft selection. Re-selecting or exceeding the cap leaves the selection unchanged.
// @Tags         questionnaire
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        skill body dto.AddSkillRequest true "Skill name"
// @Success      200 {object}  dto.SessionResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Session Not Found"
// @Failure      422 {object}  map[string]string "Skill not in catalog"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /questionnaire/sessions/{id}/skills [post]
func (h *QuestionnaireHandler) SelectSkill(c *gin.Context) {
	var req dto.AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	draft, err := h.service.SelectSkill(c.Request.Context(), c.Param("id"), req.Skill)
	if err != nil {
		if errors.Is(err, services.ErrUnknownSkill) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.respondSessionError(c, err, "Failed to select skill")
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Draft: draft})
}

// DeselectSkill godoc
// @Summary      Deselect a skill
// @Description  Removes a skill from the draft selection. Unknown names are ignored.
// @Tags         questionnaire
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        skill body dto.AddSkillRequest true "Skill name"
// @Success      200 {object}  dto.SessionResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Session Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /questionnaire/sessions/{id}/skills [delete]
func (h *QuestionnaireHandler) DeselectSkill(c *gin.Context) {
	var req dto.AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	draft, err := h.service.DeselectSkill(c.Request.Context(), c.Param("id"), req.Skill)
	if err != nil {
		h.respondSessionError(c, err, "Failed to deselect skill")
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Draft: draft})
}

// AddInterviewSlot godoc
// @Summary      Reserve an interview slot
// @Description  Adds a "Day at time" slot. Re-adding a selected slot is a no-op; slots off the 15-minute grid, same-day adjacent times, and a ninth slot are rejected.
// @Tags         questionnaire
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        slot body dto.AddSlotRequest true "Slot, e.g. 'Monday at 9:15 AM'"
// @Success      200 {object}  dto.SessionResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Session Not Found"
// @Failure      422 {object}  map[string]string "Slot rejected"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /questionnaire/sessions/{id}/interview-slots [post]
func (h *QuestionnaireHandler) AddInterviewSlot(c *gin.Context) {
	var req dto.AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	draft, err := h.service.AddInterviewSlot(c.Request.Context(), c.Param("id"), req.Slot)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.respondSessionError(c, err, "Failed to add interview slot")
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Draft: draft})
}

// RemoveInterviewSlot godoc
// @Summary      Release an interview slot
// @Description  Removes a reserved slot. Unknown slots are ignored.
// @Tags         questionnaire
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        slot body dto.AddSlotRequest true "Slot to release"
// @Success      200 {object}  dto.SessionResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Session Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /questionnaire/sessions/{id}/interview-slots [delete]
func (h *QuestionnaireHandler) RemoveInterviewSlot(c *gin.Context) {
	var req dto.AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	draft, err := h.service.RemoveInterviewSlot(c.Request.Context(), c.Param("id"), req.Slot)
	if err != nil {
		h.respondSessionError(c, err, "Failed to remove interview slot")
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Draft: draft})
}

// Submit godoc
// @Summary      Submit the questionnaire
// @Description  Re-checks the availability step's validity and writes the candidate rows. On success the draft session is deleted. A failed submission may leave earlier rows in place and can be retried.
// @Tags         questionnaire
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      201 {object}  dto.SubmissionResponse
// @Failure      404 {object}  map[string]string "Session Not Found"
// @Failure      422 {object}  map[string]string "Validation failed"
// @Failure      500 {object}  map[string]string "Submission failed"
// @Router       /questionnaire/sessions/{id}/submit [post]
func (h *QuestionnaireHandler) Submit(c *gin.Context) {
	candidate, err := h.service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		var subErr *services.SubmissionError
		switch {
		case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrUnknownSkill):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.As(err, &subErr):
			log.Printf("Submission for session %s failed at %s step: %v", c.Param("id"), subErr.Step, subErr.Err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":           "Submission failed",
				"failed_step":     subErr.Step,
				"completed_steps": subErr.Completed,
			})
		default:
			h.respondSessionError(c, err, "Failed to submit questionnaire")
		}
		return
	}
	c.JSON(http.StatusCreated, dto.SubmissionResponse{CandidateID: candidate.ID})
}

func (h *QuestionnaireHandler) respondSessionError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	log.Printf("%s (session %s): %v", fallback, c.Param("id"), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
