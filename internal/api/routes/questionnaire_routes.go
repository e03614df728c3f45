// internal/api/routes/questionnaire_routes.go
package routes

import (
	"candidate-intake-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterQuestionnaireRoutes registers the draft session routes. They are
// public: applicants have no account.
func RegisterQuestionnaireRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	questionnaireHandler handlers.QuestionnaireHandlerInterface,
) {
	sessions := rg.Group("/questionnaire/sessions")
	{
		sessions.POST("", questionnaireHandler.CreateSession)
		sessions.GET("/:id", questionnaireHandler.GetSession)
		sessions.PATCH("/:id", questionnaireHandler.UpdateSession)
		sessions.POST("/:id/next", questionnaireHandler.NextStep)
		sessions.POST("/:id/back", questionnaireHandler.PrevStep)
		sessions.POST("/:id/skills", questionnaireHandler.SelectSkill)
		sessions.DELETE("/:id/skills", questionnaireHandler.DeselectSkill)
		sessions.POST("/:id/interview-slots", questionnaireHandler.AddInterviewSlot)
		sessions.DELETE("/:id/interview-slots", questionnaireHandler.RemoveInterviewSlot)
		sessions.POST("/:id/submit", questionnaireHandler.Submit)
	}
}
