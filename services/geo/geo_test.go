package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homeland/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeoService(baseURL string) *DefaultGeoService {
	return &DefaultGeoService{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Client:  &http.Client{Timeout: time.Second},
	}
}

func TestAutocompleteScopesToVietnam(t *testing.T) {
	var query map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/autocomplete", r.URL.Path)
		query = map[string]string{
			"key":             r.URL.Query().Get("key"),
			"q":               r.URL.Query().Get("q"),
			"countrycodes":    r.URL.Query().Get("countrycodes"),
			"accept-language": r.URL.Query().Get("accept-language"),
			"limit":           r.URL.Query().Get("limit"),
		}
		w.Write([]byte(`[{"place_id": "p1", "display_name": "Quận 7, TP.HCM", "lat": "10.73", "lon": "106.72"}]`))
	}))
	defer server.Close()

	svc := newGeoService(server.URL)
	places, err := svc.Autocomplete(context.Background(), "Quận 7")

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Quận 7, TP.HCM", places[0].DisplayName)
	assert.Equal(t, "test-key", query["key"])
	assert.Equal(t, "Quận 7", query["q"])
	assert.Equal(t, "vn", query["countrycodes"])
	assert.Equal(t, "vi", query["accept-language"])
	assert.Equal(t, "5", query["limit"])
}

func TestAutocompleteRequiresQuery(t *testing.T) {
	svc := newGeoService("http://unused")
	_, err := svc.Autocomplete(context.Background(), "")
	assert.Error(t, err)
}

func TestGeocodeUsesSearchPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		w.Write([]byte(`[{"place_id": "p1", "display_name": "Hà Nội", "lat": "21.02", "lon": "105.83"}]`))
	}))
	defer server.Close()

	svc := newGeoService(server.URL)
	places, err := svc.Geocode(context.Background(), "Hà Nội")

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "p1", places[0].PlaceID)
}

func TestReverseReturnsSinglePlace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "10.73", r.URL.Query().Get("lat"))
		assert.Equal(t, "106.72", r.URL.Query().Get("lon"))
		w.Write([]byte(`{"place_id": "p1", "display_name": "Quận 7, TP.HCM", "lat": "10.73", "lon": "106.72"}`))
	}))
	defer server.Close()

	svc := newGeoService(server.URL)
	place, err := svc.Reverse(context.Background(), 10.73, 106.72)

	require.NoError(t, err)
	assert.Equal(t, "Quận 7, TP.HCM", place.DisplayName)
}

func TestLookupFailureMapsToRemoteServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := newGeoService(server.URL)
	_, err := svc.Geocode(context.Background(), "Hà Nội")

	var remoteErr *models.RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "geocoding", remoteErr.Service)
	assert.Equal(t, http.StatusUnauthorized, remoteErr.Status)
}
