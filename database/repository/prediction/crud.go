package predictionRepo

import (
	"context"
	"time"

	"homeland/database"
	"homeland/models"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

// Create appends a prediction record to the user's history and returns its ID.
func (r *firestorePredictionRepo) Create(ctx context.Context, userID string, prediction models.Prediction) (string, error) {
	if prediction.ID == "" {
		prediction.ID = uuid.New().String()
	}
	prediction.CreatedAt = time.Now()

	if _, err := r.predictions(userID).Doc(prediction.ID).Set(ctx, prediction); err != nil {
		return "", database.WriteError(err)
	}
	return prediction.ID, nil
}

// GetByUserID returns the user's prediction history, newest first.
func (r *firestorePredictionRepo) GetByUserID(ctx context.Context, userID string) ([]models.Prediction, error) {
	it := r.predictions(userID).OrderBy("timestamp", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var predictions []models.Prediction
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, database.ReadError(err)
		}
		var prediction models.Prediction
		if err := doc.DataTo(&prediction); err != nil {
			return nil, database.ReadError(err)
		}
		prediction.ID = doc.Ref.ID
		predictions = append(predictions, prediction)
	}
	return predictions, nil
}
