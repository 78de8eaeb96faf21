package prediction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeland/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPredictionRepo struct {
	mock.Mock
}

func (m *mockPredictionRepo) Create(ctx context.Context, userID string, prediction models.Prediction) (string, error) {
	args := m.Called(ctx, userID, prediction)
	return args.String(0), args.Error(1)
}

func (m *mockPredictionRepo) GetByUserID(ctx context.Context, userID string) ([]models.Prediction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prediction), args.Error(1)
}

func sampleRequest() models.PredictionRequest {
	return models.PredictionRequest{
		Area:      "75",
		Bedrooms:  3,
		Bathrooms: 2,
		Floors:    2,
		Category:  "Nhà phố",
		Location:  "Quận 7, TP.HCM",
	}
}

func TestEstimateExtractsNumericPrice(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"estimated_price": "5.2 tỷ"}`))
	}))
	defer server.Close()

	repo := new(mockPredictionRepo)
	repo.On("Create", mock.Anything, "u1", mock.Anything).Return("p1", nil)
	svc := NewDefaultPredictionService(repo, server.URL)

	result, err := svc.Estimate(context.Background(), "u1", sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, 5.2, result.EstimatedPrice)
	assert.Equal(t, "5.2 tỷ", result.RawPrice)
	// The upstream model requires a phone field; the service pads it.
	assert.Equal(t, "0000000000", captured["phone"])
	repo.AssertExpectations(t)
}

func TestEstimateAcceptsBareNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"estimated_price": 4.75}`))
	}))
	defer server.Close()

	svc := NewDefaultPredictionService(new(mockPredictionRepo), server.URL)

	result, err := svc.Estimate(context.Background(), "", sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, 4.75, result.EstimatedPrice)
}

func TestEstimateAnonymousSkipsHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"estimated_price": "1.2 tỷ"}`))
	}))
	defer server.Close()

	repo := new(mockPredictionRepo)
	svc := NewDefaultPredictionService(repo, server.URL)

	_, err := svc.Estimate(context.Background(), "", sampleRequest())

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestEstimateHistoryFailureDoesNotHideResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"estimated_price": "1.2 tỷ"}`))
	}))
	defer server.Close()

	repo := new(mockPredictionRepo)
	repo.On("Create", mock.Anything, "u1", mock.Anything).Return("", assert.AnError)
	svc := NewDefaultPredictionService(repo, server.URL)

	result, err := svc.Estimate(context.Background(), "u1", sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, 1.2, result.EstimatedPrice)
}

func TestEstimateSurfacesUpstreamDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "location is required"}`))
	}))
	defer server.Close()

	svc := NewDefaultPredictionService(new(mockPredictionRepo), server.URL)

	_, err := svc.Estimate(context.Background(), "", sampleRequest())

	var remoteErr *models.RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "prediction", remoteErr.Service)
	assert.Equal(t, http.StatusUnprocessableEntity, remoteErr.Status)
	assert.Equal(t, "location is required", remoteErr.Detail)
}

func TestEstimateRejectsMissingPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	svc := NewDefaultPredictionService(new(mockPredictionRepo), server.URL)

	_, err := svc.Estimate(context.Background(), "", sampleRequest())

	var remoteErr *models.RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
}

func TestHistoryDelegatesToRepo(t *testing.T) {
	repo := new(mockPredictionRepo)
	stored := []models.Prediction{{EstimatedPrice: 5.2}}
	repo.On("GetByUserID", mock.Anything, "u1").Return(stored, nil)
	svc := NewDefaultPredictionService(repo, "http://unused")

	got, err := svc.History(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Equal(t, stored, got)
}
