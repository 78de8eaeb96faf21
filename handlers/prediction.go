package handlers

import (
	"net/http"

	"homeland/models"
	"homeland/services/prediction"
	"homeland/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PredictionHandler serves the price-estimation endpoints.
type PredictionHandler struct {
	PredictionSvc prediction.PredictionService
}

// EstimatePriceHandler handles POST /api/predict. Anonymous users get an
// estimate too, just no history entry.
func (h *PredictionHandler) EstimatePriceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid prediction request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.PredictionSvc.Estimate(c.Request.Context(), contextUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PredictionHistoryHandler handles GET /api/predict/history.
func (h *PredictionHandler) PredictionHistoryHandler(c *gin.Context) {
	history, err := h.PredictionSvc.History(c.Request.Context(), contextUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": history, "count": len(history)})
}
