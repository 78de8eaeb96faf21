package predictionRepo

import (
	"context"

	"homeland/database"
	"homeland/models"

	"cloud.google.com/go/firestore"
)

// PredictionRepository stores per-user price-estimation history under
// user/{uid}/predict.
type PredictionRepository interface {
	Create(ctx context.Context, userID string, prediction models.Prediction) (string, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Prediction, error)
}

type firestorePredictionRepo struct {
	client *firestore.Client
}

// NewFirestorePredictionRepo returns a PredictionRepository backed by Firestore.
func NewFirestorePredictionRepo() PredictionRepository {
	return &firestorePredictionRepo{client: database.FirestoreClient}
}

func (r *firestorePredictionRepo) predictions(userID string) *firestore.CollectionRef {
	return r.client.Collection("user").Doc(userID).Collection("predict")
}
