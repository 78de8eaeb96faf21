package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"homeland/models"
	"homeland/utils"

	"go.uber.org/zap"
)

// estimateRequest is the wire payload of the prediction endpoint. The
// phone field is a placeholder the upstream model expects but ignores.
type estimateRequest struct {
	Area          string `json:"area"`
	Bedrooms      int    `json:"bedrooms"`
	Bathrooms     int    `json:"bathrooms"`
	Floors        int    `json:"floors"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	Direction     string `json:"direction,omitempty"`
	LegalDocument string `json:"legal_document,omitempty"`
	Phone         string `json:"phone"`
}

type estimateResponse struct {
	EstimatedPrice json.RawMessage `json:"estimated_price"`
}

type estimateErrorResponse struct {
	Detail string `json:"detail"`
}

// Estimate posts the property attributes to the prediction endpoint,
// extracts the numeric value from the currency-formatted reply, and
// appends the result to the user's history when one is signed in.
func (s *DefaultPredictionService) Estimate(ctx context.Context, userID string, req models.PredictionRequest) (*models.Prediction, error) {
	payload := estimateRequest{
		Area:          req.Area,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Floors:        req.Floors,
		Category:      req.Category,
		Location:      req.Location,
		Direction:     req.Direction,
		LegalDocument: req.LegalDocument,
		Phone:         "0000000000",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return nil, &models.RemoteServiceError{Service: "prediction", Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody estimateErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Detail == "" {
			errBody.Detail = "prediction request failed"
		}
		return nil, &models.RemoteServiceError{Service: "prediction", Status: resp.StatusCode, Detail: errBody.Detail}
	}

	var out estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &models.RemoteServiceError{Service: "prediction", Status: resp.StatusCode, Detail: "malformed prediction response"}
	}
	raw := strings.Trim(string(out.EstimatedPrice), `"`)
	if raw == "" || raw == "null" {
		return nil, &models.RemoteServiceError{Service: "prediction", Status: resp.StatusCode, Detail: "prediction response carried no price"}
	}

	result := &models.Prediction{
		Area:           req.Area,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		Floors:         req.Floors,
		Category:       req.Category,
		Location:       req.Location,
		Direction:      req.Direction,
		LegalDocument:  req.LegalDocument,
		EstimatedPrice: utils.ExtractDecimal(raw),
		RawPrice:       raw,
	}

	// History is a convenience record; a failed append must not hide a
	// successful estimate from the caller.
	if userID != "" {
		if _, err := s.Repo.Create(ctx, userID, *result); err != nil {
			utils.GetLogger().Warn("failed to store prediction history",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return result, nil
}

// History returns the user's stored predictions, newest first.
func (s *DefaultPredictionService) History(ctx context.Context, userID string) ([]models.Prediction, error) {
	return s.Repo.GetByUserID(ctx, userID)
}
