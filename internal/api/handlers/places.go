// internal/api/handlers/places.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"candidate-intake-api/internal/places"

	"github.com/gin-gonic/gin"
)

// PlacesHandler proxies lookup queries to the places provider so the API key
// never reaches the client.
type PlacesHandler struct {
	api places.API
}

// NewPlacesHandler creates a new PlacesHandler.
func NewPlacesHandler(api places.API) *PlacesHandler {
	return &PlacesHandler{api: api}
}

// SuggestLocations godoc
// @Summary      Autocomplete addresses
// @Description  Suggests geocode matches for a free-text address query. No matches yields an empty list.
// @Tags         places
// @Produce      json
// @Param        input query string true "Address query"
// @Success      200 {array}   places.Prediction
// @Failure      400 {object}  map[string]string "Missing input"
// @Failure      502 {object}  map[string]string "Provider error"
// @Router       /places/locations [get]
func (h *PlacesHandler) SuggestLocations(c *gin.Context) {
	input := c.Query("input")
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'input' is required"})
		return
	}

	predictions, err := h.api.SuggestLocations(c.Request.Context(), input)
	if err != nil {
		log.Printf("Error suggesting locations for %q: %v", input, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Location lookup failed"})
		return
	}
	c.JSON(http.StatusOK, predictions)
}

// ResolveLocation godoc
// @Summary      Resolve an address suggestion
// @Description  Expands a geocode place id into street, city, state, and coordinates.
// @Tags         places
// @Produce      json
// @Param        placeID path string true "Place ID"
// @Success      200 {object}  places.Location
// @Failure      404 {object}  map[string]string "Place Not Found"
// @Failure      502 {object}  map[string]string "Provider error"
// @Router       /places/locations/{placeID} [get]
func (h *PlacesHandler) ResolveLocation(c *gin.Context) {
	placeID := c.Param("placeID")
	location, err := h.api.ResolveLocation(c.Request.Context(), placeID)
	if err != nil {
		if errors.Is(err, places.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
			return
		}
		log.Printf("Error resolving location %s: %v", placeID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Location lookup failed"})
		return
	}
	c.JSON(http.StatusOK, location)
}

// SuggestBusinesses godoc
// @Summary      Autocomplete establishments
// @Description  Suggests establishment matches for a restaurant name query.
// @Tags         places
// @Produce      json
// @Param        input query string true "Establishment query"
// @Success      200 {array}   places.Prediction
// @Failure      400 {object}  map[string]string "Missing input"
// @Failure      502 {object}  map[string]string "Provider error"
// @Router       /places/businesses [get]
func (h *PlacesHandler) SuggestBusinesses(c *gin.Context) {
	input := c.Query("input")
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'input' is required"})
		return
	}

	predictions, err := h.api.SuggestBusinesses(c.Request.Context(), input)
	if err != nil {
		log.Printf("Error suggesting businesses for %q: %v", input, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Business lookup failed"})
		return
	}
	c.JSON(http.StatusOK, predictions)
}

// ResolveBusiness godoc
// @Summary      Resolve an establishment suggestion
// @Description  Expands an establishment place id into name, address, price level, rating, and types.
// @Tags         places
// @Produce      json
// @Param        placeID path string true "Place ID"
// @Success      200 {object}  places.Business
// @Failure      404 {object}  map[string]string "Place Not Found"
// @Failure      502 {object}  map[string]string "Provider error"
// @Router       /places/businesses/{placeID} [get]
func (h *PlacesHandler) ResolveBusiness(c *gin.Context) {
	placeID := c.Param("placeID")
	business, err := h.api.ResolveBusiness(c.Request.Context(), placeID)
	if err != nil {
		if errors.Is(err, places.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
			return
		}
		log.Printf("Error resolving business %s: %v", placeID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Business lookup failed"})
		return
	}
	c.JSON(http.StatusOK, business)
}
