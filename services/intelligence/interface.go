package intelligence

import (
	"context"
	"net/http"
	"time"

	"homeland/models"
)

// ChatService relays user messages to the external chat completion
// endpoint, carrying a rolling per-user transcript as context.
type ChatService interface {
	Send(ctx context.Context, userID, text string) (string, error)
	Reset(ctx context.Context, userID string) error
}

// ContextStore holds the rolling transcript per user.
type ContextStore interface {
	Get(ctx context.Context, userID string) ([]models.ChatMessage, error)
	Set(ctx context.Context, userID string, transcript []models.ChatMessage) error
	Clear(ctx context.Context, userID string) error
}

// DefaultChatService implements ChatService over HTTP with a Redis-backed
// transcript store.
type DefaultChatService struct {
	CtxStore ContextStore
	BaseURL  string
	Client   *http.Client
}

// NewDefaultChatService wires the service with the 15s call budget the
// mobile client used.
func NewDefaultChatService(ctxStore ContextStore, baseURL string) *DefaultChatService {
	return &DefaultChatService{
		CtxStore: ctxStore,
		BaseURL:  baseURL,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}
