package intelligence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"homeland/models"
	"homeland/utils"

	"go.uber.org/zap"
)

// Send relays one user message plus the recent transcript to the chat
// endpoint and returns the assistant's reply. The response schema is
// pinned: the reply must arrive under "content", anything else fails
// closed instead of producing an undefined display value.
func (s *DefaultChatService) Send(ctx context.Context, userID, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("message text is required")
	}

	logger := utils.GetLogger()
	transcript, err := s.CtxStore.Get(ctx, userID)
	if err != nil {
		// A lost transcript degrades context, not the conversation.
		logger.Warn("failed to load chat context", zap.String("userID", userID), zap.Error(err))
		transcript = nil
	}
	transcript = append(transcript, models.ChatMessage{Role: "user", Content: text})

	body, err := json.Marshal(models.ChatRequest{Messages: transcript})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return "", &models.RemoteServiceError{Service: "chat", Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &models.RemoteServiceError{Service: "chat", Status: resp.StatusCode, Detail: "chat request failed"}
	}

	var out models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &models.RemoteServiceError{Service: "chat", Status: resp.StatusCode, Detail: "malformed chat response"}
	}
	if out.Content == "" {
		return "", &models.RemoteServiceError{Service: "chat", Status: resp.StatusCode, Detail: "chat response carried no content"}
	}

	transcript = append(transcript, models.ChatMessage{Role: "assistant", Content: out.Content})
	if err := s.CtxStore.Set(ctx, userID, transcript); err != nil {
		logger.Warn("failed to store chat context", zap.String("userID", userID), zap.Error(err))
	}
	return out.Content, nil
}

// Reset drops the user's stored transcript.
func (s *DefaultChatService) Reset(ctx context.Context, userID string) error {
	return s.CtxStore.Clear(ctx, userID)
}
