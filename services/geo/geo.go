package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"homeland/models"
)

// Listings are Vietnamese addresses, so every lookup is scoped to vn
// and asks for Vietnamese display names.
func (s *DefaultGeoService) baseParams() url.Values {
	params := url.Values{}
	params.Set("key", s.APIKey)
	params.Set("format", "json")
	params.Set("countrycodes", "vn")
	params.Set("accept-language", "vi")
	return params
}

func (s *DefaultGeoService) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := s.BaseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return &models.RemoteServiceError{Service: "geocoding", Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &models.RemoteServiceError{Service: "geocoding", Status: resp.StatusCode, Detail: "geocoding request failed"}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &models.RemoteServiceError{Service: "geocoding", Status: resp.StatusCode, Detail: "malformed geocoding response"}
	}
	return nil
}

// Autocomplete suggests addresses while the user types.
func (s *DefaultGeoService) Autocomplete(ctx context.Context, query string) ([]models.Place, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	params := s.baseParams()
	params.Set("q", query)
	params.Set("limit", "5")

	var places []models.Place
	if err := s.get(ctx, "/autocomplete", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// Geocode resolves a full address to coordinates.
func (s *DefaultGeoService) Geocode(ctx context.Context, address string) ([]models.Place, error) {
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}
	params := s.baseParams()
	params.Set("q", address)

	var places []models.Place
	if err := s.get(ctx, "/search", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// Reverse resolves coordinates to the nearest address.
func (s *DefaultGeoService) Reverse(ctx context.Context, lat, lon float64) (*models.Place, error) {
	params := s.baseParams()
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var place models.Place
	if err := s.get(ctx, "/reverse", params, &place); err != nil {
		return nil, err
	}
	return &place, nil
}
