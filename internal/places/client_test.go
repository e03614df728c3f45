package places

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SuggestLocations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/autocomplete/json", r.URL.Path)
		assert.Equal(t, "geocode", r.URL.Query().Get("types"))
		assert.Equal(t, "500 congress", r.URL.Query().Get("input"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		fmt.Fprint(w, `{
			"status": "OK",
			"predictions": [
				{
					"place_id": "p1",
					"description": "500 Congress Ave, Austin, TX, USA",
					"structured_formatting": {
						"main_text": "500 Congress Ave",
						"secondary_text": "Austin, TX, USA"
					}
				}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	predictions, err := client.SuggestLocations(context.Background(), "500 congress")

	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, "p1", predictions[0].ID)
	assert.Equal(t, "500 Congress Ave", predictions[0].Label)
	assert.Equal(t, "Austin, TX, USA", predictions[0].SecondaryLabel)
}

func TestClient_SuggestBusinesses_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "establishment", r.URL.Query().Get("types"))
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "predictions": []}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	predictions, err := client.SuggestBusinesses(context.Background(), "no such restaurant")

	require.NoError(t, err, "zero matches is a valid empty answer")
	assert.Empty(t, predictions)
	assert.NotNil(t, predictions)
}

func TestClient_Suggest_EmptyInput(t *testing.T) {
	client := NewClient("test-key", "http://unused.invalid")

	_, err := client.SuggestLocations(context.Background(), "")

	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestClient_Suggest_MissingKey(t *testing.T) {
	client := NewClient("", "http://unused.invalid")

	_, err := client.SuggestLocations(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestClient_Suggest_ProviderDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "REQUEST_DENIED", "error_message": "key invalid"}`)
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL)
	_, err := client.SuggestLocations(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrProviderFail)
}

func TestClient_ResolveLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details/json", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("place_id"))

		fmt.Fprint(w, `{
			"status": "OK",
			"result": {
				"formatted_address": "500 Congress Ave, Austin, TX 78701, USA",
				"address_components": [
					{"long_name": "500", "short_name": "500", "types": ["street_number"]},
					{"long_name": "Congress Avenue", "short_name": "Congress Ave", "types": ["route"]},
					{"long_name": "Austin", "short_name": "Austin", "types": ["locality", "political"]},
					{"long_name": "Texas", "short_name": "TX", "types": ["administrative_area_level_1", "political"]}
				],
				"geometry": {"location": {"lat": 30.2672, "lng": -97.7431}}
			}
		}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	location, err := client.ResolveLocation(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Congress Avenue", location.Route)
	assert.Equal(t, "Austin", location.Locality)
	assert.Equal(t, "TX", location.State, "region uses the short code")
	assert.Equal(t, "p1", location.PlaceID)
	assert.InDelta(t, 30.2672, location.Lat, 0.0001)
	assert.InDelta(t, -97.7431, location.Lng, 0.0001)
}

func TestClient_ResolveBusiness(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"status": "OK",
			"result": {
				"place_id": "b1",
				"name": "The Grove",
				"formatted_address": "123 Main St, Austin, TX, USA",
				"price_level": 2,
				"types": ["restaurant", "food"],
				"rating": 4.5,
				"user_ratings_total": 812
			}
		}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	business, err := client.ResolveBusiness(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "The Grove", business.Name)
	require.NotNil(t, business.PriceLevel)
	assert.Equal(t, 2, *business.PriceLevel)
	assert.Equal(t, []string{"restaurant", "food"}, business.Types)
	require.NotNil(t, business.Rating)
	assert.InDelta(t, 4.5, *business.Rating, 0.001)
	require.NotNil(t, business.RatingCount)
	assert.Equal(t, 812, *business.RatingCount)
}

func TestClient_ResolveBusiness_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "NOT_FOUND"}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.ResolveBusiness(context.Background(), "gone")

	assert.ErrorIs(t, err, ErrNotFound)
}
