package models

import "time"

// PredictionRequest is the payload coming from the client into
// /api/predict.
type PredictionRequest struct {
	Area          string `json:"area" binding:"required"`
	Bedrooms      int    `json:"bedrooms" binding:"required"`
	Bathrooms     int    `json:"bathrooms" binding:"required"`
	Floors        int    `json:"floors" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Location      string `json:"location" binding:"required"`
	Direction     string `json:"direction,omitempty"`
	LegalDocument string `json:"legal_document,omitempty"`
}

// Prediction is one stored price-estimation record under
// user/{uid}/predict.
type Prediction struct {
	ID             string    `firestore:"id" json:"id"`
	Area           string    `firestore:"area" json:"area"`
	Bedrooms       int       `firestore:"bedrooms" json:"bedrooms"`
	Bathrooms      int       `firestore:"bathrooms" json:"bathrooms"`
	Floors         int       `firestore:"floors" json:"floors"`
	Category       string    `firestore:"category" json:"category"`
	Location       string    `firestore:"location" json:"location"`
	Direction      string    `firestore:"direction,omitempty" json:"direction,omitempty"`
	LegalDocument  string    `firestore:"legalDocument,omitempty" json:"legal_document,omitempty"`
	EstimatedPrice float64   `firestore:"estimatedPrice" json:"estimatedPrice"`
	RawPrice       string    `firestore:"rawPrice,omitempty" json:"rawPrice,omitempty"`
	CreatedAt      time.Time `firestore:"timestamp" json:"timestamp"`
}
