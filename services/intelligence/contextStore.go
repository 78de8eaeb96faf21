package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"homeland/models"

	"github.com/go-redis/redis/v8"
)

const chatContextPrefix = "chat:ctx:"

// maxTranscriptTurns bounds the history sent upstream per request.
const maxTranscriptTurns = 20

// RedisContextStore keeps the rolling chat transcript per user with a TTL,
// so a conversation resumes naturally within the window and expires after.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	data, err := s.client.Get(ctx, chatContextPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var transcript []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &transcript); err != nil {
		return nil, err
	}
	return transcript, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, transcript []models.ChatMessage) error {
	if len(transcript) > maxTranscriptTurns {
		transcript = transcript[len(transcript)-maxTranscriptTurns:]
	}
	b, err := json.Marshal(transcript)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatContextPrefix+userID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, chatContextPrefix+userID).Err()
}
