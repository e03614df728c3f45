// Package places forwards free-text queries to the Places provider and
// normalizes its responses. Two lookup kinds exist: geocode (candidate home
// address) and establishment (restaurants on the experience page). The
// provider key is held server-side; callers supply only the query or id.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrEmptyInput   = errors.New("input query is empty")
	ErrNoAPIKey     = errors.New("places API key not configured")
	ErrNotFound     = errors.New("place not found")
	ErrProviderFail = errors.New("places provider request failed")
)

// Prediction is one autocomplete suggestion.
type Prediction struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	SecondaryLabel string `json:"secondary_label"`
}

// Location is a geocode lookup resolved into structured address fields.
type Location struct {
	Route            string  `json:"route"`
	Locality         string  `json:"locality"`
	State            string  `json:"state"`
	PlaceID          string  `json:"place_id"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

// Business is an establishment lookup resolved into place details.
type Business struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	PriceLevel       *int     `json:"price_level"`
	Types            []string `json:"types"`
	Rating           *float64 `json:"rating"`
	RatingCount      *int     `json:"user_ratings_total"`
}

// API is the lookup surface consumed by the proxy handlers. It is an
// interface so tests can substitute the provider.
type API interface {
	SuggestLocations(ctx context.Context, input string) ([]Prediction, error)
	SuggestBusinesses(ctx context.Context, input string) ([]Prediction, error)
	ResolveLocation(ctx context.Context, placeID string) (*Location, error)
	ResolveBusiness(ctx context.Context, placeID string) (*Business, error)
}

// Client talks to the provider's autocomplete and details endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a provider client. baseURL defaults to the Google Places
// web service root when empty.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api/place"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

var _ API = (*Client)(nil)

type autocompleteResponse struct {
	Status      string `json:"status"`
	ErrorMsg    string `json:"error_message"`
	Predictions []struct {
		PlaceID              string `json:"place_id"`
		Description          string `json:"description"`
		StructuredFormatting struct {
			MainText      string `json:"main_text"`
			SecondaryText string `json:"secondary_text"`
		} `json:"structured_formatting"`
	} `json:"predictions"`
}

type detailsResponse struct {
	Status   string `json:"status"`
	ErrorMsg string `json:"error_message"`
	Result   struct {
		PlaceID           string   `json:"place_id"`
		Name              string   `json:"name"`
		FormattedAddress  string   `json:"formatted_address"`
		PriceLevel        *int     `json:"price_level"`
		Types             []string `json:"types"`
		Rating            *float64 `json:"rating"`
		UserRatingsTotal  *int     `json:"user_ratings_total"`
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// SuggestLocations autocompletes a free-text address query. Zero provider
// matches return an empty list, not an error.
func (c *Client) SuggestLocations(ctx context.Context, input string) ([]Prediction, error) {
	return c.suggest(ctx, input, "geocode")
}

// SuggestBusinesses autocompletes an establishment query.
func (c *Client) SuggestBusinesses(ctx context.Context, input string) ([]Prediction, error) {
	return c.suggest(ctx, input, "establishment")
}

func (c *Client) suggest(ctx context.Context, input, types string) ([]Prediction, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	endpoint := fmt.Sprintf("%s/autocomplete/json?input=%s&types=%s&key=%s",
		c.baseURL, url.QueryEscape(input), types, url.QueryEscape(c.apiKey))

	var payload autocompleteResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		log.Printf("Places autocomplete returned status %s: %s", payload.Status, payload.ErrorMsg)
		return nil, fmt.Errorf("%w: status %s", ErrProviderFail, payload.Status)
	}

	predictions := make([]Prediction, 0, len(payload.Predictions))
	for _, p := range payload.Predictions {
		label := p.StructuredFormatting.MainText
		if label == "" {
			label = p.Description
		}
		predictions = append(predictions, Prediction{
			ID:             p.PlaceID,
			Label:          label,
			SecondaryLabel: p.StructuredFormatting.SecondaryText,
		})
	}
	return predictions, nil
}

// ResolveLocation expands a geocode place id into structured address fields:
// street route, city, region code, and coordinates.
func (c *Client) ResolveLocation(ctx context.Context, placeID string) (*Location, error) {
	payload, err := c.details(ctx, placeID, "address_components,geometry,formatted_address")
	if err != nil {
		return nil, err
	}

	loc := &Location{
		PlaceID:          placeID,
		Lat:              payload.Result.Geometry.Location.Lat,
		Lng:              payload.Result.Geometry.Location.Lng,
		FormattedAddress: payload.Result.FormattedAddress,
	}
	for _, comp := range payload.Result.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "route":
				loc.Route = comp.LongName
			case "locality":
				loc.Locality = comp.LongName
			case "administrative_area_level_1":
				loc.State = comp.ShortName
			}
		}
	}
	return loc, nil
}

// ResolveBusiness expands an establishment place id into business details.
func (c *Client) ResolveBusiness(ctx context.Context, placeID string) (*Business, error) {
	payload, err := c.details(ctx, placeID,
		"place_id,name,formatted_address,price_level,types,rating,user_ratings_total")
	if err != nil {
		return nil, err
	}

	return &Business{
		PlaceID:          payload.Result.PlaceID,
		Name:             payload.Result.Name,
		FormattedAddress: payload.Result.FormattedAddress,
		PriceLevel:       payload.Result.PriceLevel,
		Types:            payload.Result.Types,
		Rating:           payload.Result.Rating,
		RatingCount:      payload.Result.UserRatingsTotal,
	}, nil
}

func (c *Client) details(ctx context.Context, placeID, fields string) (*detailsResponse, error) {
	if placeID == "" {
		return nil, ErrEmptyInput
	}
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	endpoint := fmt.Sprintf("%s/details/json?place_id=%s&fields=%s&key=%s",
		c.baseURL, url.QueryEscape(placeID), url.QueryEscape(fields), url.QueryEscape(c.apiKey))

	var payload detailsResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	switch payload.Status {
	case "OK":
		return &payload, nil
	case "ZERO_RESULTS", "NOT_FOUND", "INVALID_REQUEST":
		return nil, ErrNotFound
	default:
		log.Printf("Places details returned status %s: %s", payload.Status, payload.ErrorMsg)
		return nil, fmt.Errorf("%w: status %s", ErrProviderFail, payload.Status)
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build places request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderFail, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: HTTP %d", ErrProviderFail, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode places response: %w", err)
	}
	return nil
}
