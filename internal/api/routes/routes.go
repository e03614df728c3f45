// internal/api/routes/routes.go
package routes

import (
	"log"

	"candidate-intake-api/internal/api/handlers"
	"candidate-intake-api/internal/api/middleware"
	"candidate-intake-api/internal/app"
	"candidate-intake-api/internal/places"
	"candidate-intake-api/internal/services"
	"candidate-intake-api/internal/storage/objects"
	"candidate-intake-api/internal/storage/postgres"
	redisstore "candidate-intake-api/internal/storage/redis"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Repositories ---
	positionRepo := postgres.NewPositionRepo(app.DBPool)
	categoryRepo := postgres.NewSkillCategoryRepo(app.DBPool)
	skillRepo := postgres.NewSkillRepo(app.DBPool)
	candidateRepo := postgres.NewCandidateRepo(app.DBPool)
	draftStore := redisstore.NewDraftStore(app.RedisClient, app.Config.Questionnaire.DraftTTL)

	// --- Services ---
	positionService := services.NewPositionService(positionRepo)
	categoryService := services.NewSkillCategoryService(categoryRepo)
	skillService := services.NewSkillService(skillRepo)
	questionnaireService := services.NewQuestionnaireService(draftStore, candidateRepo, skillRepo)

	// --- Outbound clients ---
	placesClient := places.NewClient(app.Config.Places.APIKey, app.Config.Places.BaseURL)
	objectStore := objects.NewClient(app.Config.Storage.BaseURL, app.Config.Storage.ServiceKey)

	// --- Handlers ---
	positionHandler := handlers.NewPositionHandler(positionService, app.Validator)
	categoryHandler := handlers.NewSkillCategoryHandler(categoryService, app.Validator)
	skillHandler := handlers.NewSkillHandler(skillService, app.Validator)
	questionnaireHandler := handlers.NewQuestionnaireHandler(questionnaireService, app.Validator)
	placesHandler := handlers.NewPlacesHandler(placesClient)
	uploadHandler := handlers.NewUploadHandler(
		objectStore,
		app.Config.Storage.HeadshotBucket,
		app.Config.Storage.ResumeBucket,
		app.Config.Storage.VideoBucket,
	)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterReferenceRoutes(apiV1, positionHandler, categoryHandler, skillHandler, authMiddleware)
	RegisterQuestionnaireRoutes(apiV1, questionnaireHandler)
	RegisterPlacesRoutes(apiV1, placesHandler)
	RegisterUploadRoutes(apiV1, uploadHandler)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
