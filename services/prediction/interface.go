package prediction

import (
	"context"
	"net/http"
	"time"

	predictionRepo "homeland/database/repository/prediction"
	"homeland/models"
)

// PredictionService calls the external price-estimation endpoint and
// keeps per-user history.
type PredictionService interface {
	Estimate(ctx context.Context, userID string, req models.PredictionRequest) (*models.Prediction, error)
	History(ctx context.Context, userID string) ([]models.Prediction, error)
}

// DefaultPredictionService implements PredictionService against an
// HTTP prediction endpoint.
type DefaultPredictionService struct {
	Repo    predictionRepo.PredictionRepository
	BaseURL string
	Client  *http.Client
}

// NewDefaultPredictionService wires the service with the 30s call budget
// the mobile client used.
func NewDefaultPredictionService(repo predictionRepo.PredictionRepository, baseURL string) *DefaultPredictionService {
	return &DefaultPredictionService{
		Repo:    repo,
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}
