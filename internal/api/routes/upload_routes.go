// internal/api/routes/upload_routes.go
package routes

import (
	"candidate-intake-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUploadRoutes registers the asset upload routes.
func RegisterUploadRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	uploadHandler handlers.UploadHandlerInterface,
) {
	uploads := rg.Group("/uploads")
	{
		uploads.POST("/headshots", uploadHandler.UploadHeadshot)
		uploads.POST("/resumes", uploadHandler.UploadResume)
		uploads.POST("/videos", uploadHandler.UploadVideo)
		uploads.DELETE("/headshots/:name", uploadHandler.RemoveHeadshot)
		uploads.DELETE("/resumes/:name", uploadHandler.RemoveResume)
		uploads.DELETE("/videos/:name", uploadHandler.RemoveVideo)
	}
}
