// internal/api/routes/places_routes.go
package routes

import (
	"candidate-intake-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterPlacesRoutes registers the lookup proxy routes.
func RegisterPlacesRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	placesHandler handlers.PlacesHandlerInterface,
) {
	places := rg.Group("/places")
	{
		places.GET("/locations", placesHandler.SuggestLocations)
		places.GET("/locations/:placeID", placesHandler.ResolveLocation)
		places.GET("/businesses", placesHandler.SuggestBusinesses)
		places.GET("/businesses/:placeID", placesHandler.ResolveBusiness)
	}
}
