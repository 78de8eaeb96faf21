package geo

import (
	"context"
	"net/http"
	"time"

	"homeland/models"
)

// GeoService resolves free-text addresses and coordinates through the
// LocationIQ API.
type GeoService interface {
	Autocomplete(ctx context.Context, query string) ([]models.Place, error)
	Geocode(ctx context.Context, address string) ([]models.Place, error)
	Reverse(ctx context.Context, lat, lon float64) (*models.Place, error)
}

// DefaultGeoService implements GeoService against LocationIQ.
type DefaultGeoService struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewDefaultGeoService(baseURL, apiKey string) *DefaultGeoService {
	return &DefaultGeoService{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}
