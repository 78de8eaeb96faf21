package handlers

import (
	"net/http"

	"homeland/services/intelligence"
	"homeland/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the assistant chat endpoints.
type ChatHandler struct {
	ChatSvc intelligence.ChatService
}

// SendChatHandler handles POST /api/chat.
func (h *ChatHandler) SendChatHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.ChatSvc.Send(c.Request.Context(), contextUserID(c), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// ResetChatHandler handles DELETE /api/chat/context.
func (h *ChatHandler) ResetChatHandler(c *gin.Context) {
	if err := h.ChatSvc.Reset(c.Request.Context(), contextUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat context cleared"})
}
