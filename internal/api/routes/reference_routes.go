// internal/api/routes/reference_routes.go
package routes

import (
	"candidate-intake-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterReferenceRoutes registers the reference-table routes. Reads are
// public so the questionnaire can populate its dropdowns; writes live under
// /admin and require authentication.
func RegisterReferenceRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	positionHandler handlers.PositionHandlerInterface,
	categoryHandler handlers.SkillCategoryHandlerInterface,
	skillHandler handlers.SkillHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	// Public reads
	rg.GET("/positions", positionHandler.ListPositions)
	rg.GET("/skill-categories", categoryHandler.ListSkillCategories)
	rg.GET("/skills", skillHandler.ListSkills)

	admin := rg.Group("/admin")
	admin.Use(authMiddleware) // Apply auth middleware to all dashboard routes
	{
		positions := admin.Group("/positions")
		{
			positions.POST("", positionHandler.CreatePosition)
			positions.PUT("/:id", positionHandler.RenamePosition)
			positions.DELETE("/:id", positionHandler.DeletePosition)
			positions.POST("/:id/move-up", positionHandler.MovePositionUp)
			positions.POST("/:id/move-down", positionHandler.MovePositionDown)
		}

		categories := admin.Group("/skill-categories")
		{
			categories.POST("", categoryHandler.CreateSkillCategory)
			categories.PUT("/:id", categoryHandler.RenameSkillCategory)
			categories.DELETE("/:id", categoryHandler.DeleteSkillCategory)
			categories.POST("/:id/move-up", categoryHandler.MoveSkillCategoryUp)
			categories.POST("/:id/move-down", categoryHandler.MoveSkillCategoryDown)
		}

		skills := admin.Group("/skills")
		{
			skills.POST("", skillHandler.CreateSkill)
			skills.PUT("/:id", skillHandler.RenameSkill)
			skills.DELETE("/:id", skillHandler.DeleteSkill)
		}
	}
}
